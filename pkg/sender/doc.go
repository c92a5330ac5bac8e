// Package sender posts broadcast push notifications to Urban Airship.
//
// A BroadcastSender builds one authenticated JSON POST per push, reads the
// response status and hands the result to a Recorder (normally the push log
// file from package pushlog):
//
//	s := sender.NewBroadcastSender(sender.DefaultEndpoint, http.DefaultClient, recorder, logger)
//	out := s.Send(ctx, sender.Push{
//	    AppName:      "Journal",
//	    AppKey:       key,
//	    MasterSecret: secret,
//	    AlertText:    sender.DefaultAlertText,
//	})
//	if !out.Succeeded() {
//	    ...
//	}
//
// Send never returns an error. Transport failures are carried in
// Outcome.Err so callers can tell them apart from a rejected push, but
// both count as an unsuccessful Outcome.
package sender
