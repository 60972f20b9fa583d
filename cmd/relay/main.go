// Command relay runs and exercises the Paradise RealEstate mail relay.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/paradise-realestate/relay/internal/config"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "relay",
		Short: "Paradise RealEstate enquiry mail relay",
		Long: `relay accepts website enquiries on POST /api/contact and relays them as an
operator notification plus an auto-reply to the submitter.

Configuration comes from the environment, optionally preloaded from .env files.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSlice("env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(
		newServeCmd(),
		newSubmitCmd(),
		newRenderCmd(),
		newCheckCmd(),
	)
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	files, err := cmd.Flags().GetStringSlice("env-file")
	if err != nil {
		return nil, err
	}
	return config.Load(files...)
}
