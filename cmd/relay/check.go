package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/paradise-realestate/relay/pkg/health"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and probe the mail provider",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	cmd.Flags().Duration("timeout", readinessTimeout, "probe timeout")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	_, checks := newSender(cfg)
	resp, err := health.Run(cmd.Context(), checks, health.WithTimeout(timeout))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(struct {
		*health.Response
		CheckedAt string `json:"checkedAt"`
	}{resp, time.Now().UTC().Format(time.RFC3339)}); encErr != nil {
		return encErr
	}
	return err
}
