package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paradise-realestate/relay/pkg/enquiry"
)

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one enquiry to a running relay, as the website form would",
		Example: `  relay submit --first-name Asha --email asha@example.com --project "Luxe Horizon"
  relay submit --url https://api.preuae.com --variant condensed --first-name "Asha Rao" --email asha@example.com`,
		Args: cobra.NoArgs,
		RunE: runSubmit,
	}

	f := cmd.Flags()
	f.String("url", "http://localhost:3001", "relay base URL")
	f.String("variant", string(enquiry.VariantFull), "form variant: full or condensed")
	f.Duration("timeout", enquiry.DefaultTimeout, "request timeout")
	for _, field := range submitFields {
		f.String(field.flag, "", field.usage)
	}
	return cmd
}

var submitFields = []struct {
	flag  string
	field enquiry.Field
	usage string
}{
	{"first-name", enquiry.FieldFirstName, "first name (full name in the condensed form)"},
	{"last-name", enquiry.FieldLastName, "last name"},
	{"email", enquiry.FieldEmail, "email address"},
	{"phone", enquiry.FieldPhone, "phone number"},
	{"project", enquiry.FieldProject, "project of interest"},
	{"message", enquiry.FieldMessage, "message"},
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	baseURL, _ := f.GetString("url")
	variant, _ := f.GetString("variant")
	timeout, _ := f.GetDuration("timeout")

	ctrl := enquiry.New(enquiry.NewClient(baseURL),
		enquiry.WithVariant(enquiry.ParseVariant(variant)),
		enquiry.WithTimeout(timeout),
	)
	defer ctrl.Close()

	for _, sf := range submitFields {
		value, _ := f.GetString(sf.flag)
		if value == "" {
			continue
		}
		if err := ctrl.Set(sf.field, value); err != nil {
			return fmt.Errorf("--%s: %w", sf.flag, err)
		}
	}

	state, err := ctrl.Submit(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), state)
	return err
}
