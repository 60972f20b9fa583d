package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paradise-realestate/relay/pkg/contact"
	"github.com/paradise-realestate/relay/pkg/mailer"
)

var errNoOperator = errors.New("render: operator mailbox unknown, set MAIL_TO or --operator")

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [payload.json]",
		Short: "Print both emails for a payload without sending them",
		Long: `render reads a contact payload as JSON from the given file or stdin and prints
the operator notification and the auto-reply the relay would send.`,
		Example: `  echo '{"firstName":"Asha","email":"asha@example.com"}' | relay render`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRender,
	}
	cmd.Flags().String("operator", "", "operator mailbox (default MAIL_TO)")
	cmd.Flags().Bool("html", false, "print the HTML bodies instead of plain text")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	operator, _ := cmd.Flags().GetString("operator")
	asHTML, _ := cmd.Flags().GetBool("html")

	if operator == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		operator = cfg.MailTo
	}
	if operator == "" {
		return errNoOperator
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var s contact.Submission
	if err := json.NewDecoder(in).Decode(&s); err != nil {
		return fmt.Errorf("render: decode payload: %w", err)
	}

	r, err := contact.NewRelay(discard, operator)
	if err != nil {
		return err
	}
	notification, autoReply, err := r.Compose(s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printEmail(out, notification, asHTML)
	fmt.Fprintln(out, strings.Repeat("-", 72))
	printEmail(out, autoReply, asHTML)
	return nil
}

// discard is never called; Compose does not send.
var discard = mailer.SenderFunc(func(context.Context, *mailer.Email) error { return nil })

func printEmail(w io.Writer, e *mailer.Email, asHTML bool) {
	fmt.Fprintf(w, "To: %s\n", strings.Join(e.To, ", "))
	if e.ReplyTo != "" {
		fmt.Fprintf(w, "Reply-To: %s\n", e.ReplyTo)
	}
	fmt.Fprintf(w, "Subject: %s\n\n", e.Subject)
	if asHTML {
		fmt.Fprintln(w, e.HTML)
		return
	}
	fmt.Fprintln(w, e.Text)
}
