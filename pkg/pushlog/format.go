package pushlog

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultFileName is the push log created in the working directory.
	DefaultFileName = "Elsevier_JAT_Push_Log.txt"

	// TimestampLayout renders local time as yyyy/Mon/dd HH:mm:ss.
	TimestampLayout = "2006/Jan/02 15:04:05"
)

// FormatBlock renders the log block for one attempt.
func FormatBlock(appName, alertText string, statusCode int, at time.Time) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("Push Notification for " + appName + " sent:")
	b.WriteString("\n")
	b.WriteString(at.Format(TimestampLayout))
	b.WriteString("\n")
	b.WriteString("Alert Text Sent: " + alertText)
	b.WriteString("\n")
	if statusCode != http.StatusOK {
		b.WriteString("Error sending push notification!")
		b.WriteString("\n")
		b.WriteString("HTTP Error: " + strconv.Itoa(statusCode))
		b.WriteString("\n")
	} else {
		b.WriteString("Push sent successfully")
	}
	return b.String()
}
