// Package pushlog keeps the plain-text audit trail of push attempts.
//
// Each attempt that reached the push service appends one block to the log
// file:
//
//	Push Notification for Journal sent:
//	2024/Mar/05 09:14:02
//	Alert Text Sent: There is a new issue available.
//	Push sent successfully
//
// Failed attempts end with the HTTP status instead:
//
//	Error sending push notification!
//	HTTP Error: 503
//
// The file has no rotation or size cap. Follow tails it as new blocks are
// appended.
package pushlog
