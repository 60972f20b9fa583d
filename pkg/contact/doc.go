// Package contact relays website enquiries by email.
//
// A [Submission] is validated (first name and email required), then the
// [Relay] sends an operator notification with Reply-To set to the
// submitter, followed by an auto-reply to the submitter. Both messages are
// rendered from templates embedded in the binary; submitter input is
// escaped before rendering and the resulting HTML is sanitized.
//
// [Outcome] maps the error returned by Relay.Submit to the HTTP status and
// [Result] body of the enquiry endpoint.
package contact
