// Package enquiry implements the website enquiry form as a state machine.
//
// A [Controller] moves between four states:
//
//	Editing --submit--> Submitting --ok--> Success --Reset--> Editing
//	                         |
//	                         +--failure--> Error --submit--> Submitting
//
// Submit runs a required-field gate (first name, well-formed email) before
// any network work, bounds each request with a timeout (15s by default) and
// keeps the entered values when the submission fails. Close cancels an
// in-flight submit and discards its late result.
//
// The same controller serves both form layouts; [Variant] selects which
// fields are rendered. [Render] produces an htmx fragment of a snapshot and
// [Client] is a [Submitter] that posts to a remote relay.
//
// Usage:
//
//	ctrl := enquiry.New(enquiry.NewClient("https://relay.example.com"),
//		enquiry.WithVariant(enquiry.VariantCondensed))
//	defer ctrl.Close()
//
//	_ = ctrl.Set(enquiry.FieldFirstName, "Asha")
//	_ = ctrl.Set(enquiry.FieldEmail, "asha@example.com")
//	state, err := ctrl.Submit(ctx)
package enquiry
