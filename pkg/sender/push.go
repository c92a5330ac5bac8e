package sender

import (
	"encoding/base64"
	"strings"
)

const (
	// DefaultEndpoint is the Urban Airship broadcast endpoint.
	DefaultEndpoint = "https://go.urbanairship.com/api/push/broadcast/"

	// DefaultAlertText is sent when the caller does not supply alert text.
	DefaultAlertText = "There is a new issue available."

	// SilentAlertText suppresses the alert; only the badge and
	// content-available flags are sent.
	SilentAlertText = "0"
)

// Push is a single broadcast request.
type Push struct {
	// AppName labels the push in the push log. It is never sent.
	AppName string

	// AppKey and MasterSecret are the Urban Airship application credentials.
	AppKey       string
	MasterSecret string

	// AlertText is the notification text, or SilentAlertText.
	AlertText string
}

// Authorization returns the value of the Authorization header.
func (p Push) Authorization() string {
	encoded := base64.StdEncoding.EncodeToString([]byte(p.AppKey + ":" + p.MasterSecret))
	return "Basic " + strings.TrimSpace(encoded)
}

// Payload returns the JSON body for the push.
//
// The alert text is spliced into the document as-is. Text containing a
// double quote or backslash yields invalid JSON; callers relying on the
// historical log output depend on this, so it is kept.
func (p Push) Payload() []byte {
	if p.AlertText == SilentAlertText {
		return []byte(`{"aps":{"badge":1,"content-available":1}}`)
	}
	return []byte(`{"aps":{"alert":"` + p.AlertText + `","badge":1,"content-available":1}}`)
}
