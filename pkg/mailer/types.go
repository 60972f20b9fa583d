package mailer

// Email is a fully composed message handed to a Sender.
type Email struct {
	// Headers are extra headers applied verbatim.
	Headers map[string]string
	Subject string
	HTML    string
	// Text is the plain text alternative.
	Text string
	// From overrides the sender's configured identity when set.
	From    string
	ReplyTo string
	// To must hold at least one address.
	To  []string
	CC  []string
	BCC []string
}

// Recipients returns every envelope recipient of the message.
func (e *Email) Recipients() []string {
	all := make([]string, 0, len(e.To)+len(e.CC)+len(e.BCC))
	all = append(all, e.To...)
	all = append(all, e.CC...)
	return append(all, e.BCC...)
}
