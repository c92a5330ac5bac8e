// Package pushcast sends Urban Airship broadcast pushes and keeps a
// plain-text log of every attempt.
//
// Example usage:
//
//	if !pushcast.SendPush("Journal", appKey, masterSecret, "Volume 12 is out") {
//	    // the push failed or was rejected
//	}
//
// Use New with a Config to change the endpoint, the log file or the HTTP
// client.
package pushcast

import (
	"context"
	"net/http"
	"time"

	"github.com/bft-labs/pushcast/pkg/log"
	"github.com/bft-labs/pushcast/pkg/pushlog"
	"github.com/bft-labs/pushcast/pkg/sender"
)

const (
	// DefaultServiceURL is the broadcast endpoint pushes are posted to.
	DefaultServiceURL = sender.DefaultEndpoint

	// DefaultLogFile is the push log written in the working directory.
	DefaultLogFile = pushlog.DefaultFileName

	// DefaultAlertText is used by SendPushDefault.
	DefaultAlertText = sender.DefaultAlertText

	// SilentAlertText sends a push without alert text.
	SilentAlertText = sender.SilentAlertText
)

// Outcome is the result of one send attempt.
type Outcome = sender.Outcome

// Config holds the settings of a Client.
// Use DefaultConfig() to get a Config with the historical defaults.
type Config struct {
	// ServiceURL is the full broadcast endpoint.
	ServiceURL string

	// LogFile is the push log path.
	LogFile string

	// HTTPTimeout bounds each request. Zero means no timeout.
	HTTPTimeout time.Duration

	// HTTPClient overrides the client built from HTTPTimeout.
	HTTPClient sender.HTTPClient

	// Logger receives diagnostics. Defaults to zerolog console output on stderr.
	Logger log.Logger

	// Clock supplies push log timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceURL: DefaultServiceURL,
		LogFile:    DefaultLogFile,
	}
}

// Client sends pushes with a fixed configuration. It is safe for
// concurrent use; push log writes from one Client are serialized.
type Client struct {
	sender   *sender.BroadcastSender
	recorder *pushlog.FileRecorder
}

// New creates a Client. Empty fields fall back to DefaultConfig values.
func New(cfg Config) *Client {
	if cfg.ServiceURL == "" {
		cfg.ServiceURL = DefaultServiceURL
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewZerologAdapter()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	recorder := pushlog.NewFileRecorder(cfg.LogFile,
		pushlog.WithLogger(cfg.Logger),
		pushlog.WithClock(cfg.Clock),
	)
	return &Client{
		sender:   sender.NewBroadcastSender(cfg.ServiceURL, client, recorder, cfg.Logger),
		recorder: recorder,
	}
}

// Send posts a broadcast push and returns the detailed outcome.
func (c *Client) Send(ctx context.Context, appName, appKey, appMasterSecret, alertText string) Outcome {
	return c.sender.Send(ctx, sender.Push{
		AppName:      appName,
		AppKey:       appKey,
		MasterSecret: appMasterSecret,
		AlertText:    alertText,
	})
}

// SendPush posts a broadcast push and reports whether the service
// answered 200 OK. An alertText of "0" sends no alert text.
func (c *Client) SendPush(appName, appKey, appMasterSecret, alertText string) bool {
	return c.Send(context.Background(), appName, appKey, appMasterSecret, alertText).Succeeded()
}

// SendPushDefault is SendPush with DefaultAlertText.
func (c *Client) SendPushDefault(appName, appKey, appMasterSecret string) bool {
	return c.SendPush(appName, appKey, appMasterSecret, DefaultAlertText)
}

// LogFile returns the path of the push log.
func (c *Client) LogFile() string {
	return c.recorder.Path()
}

// SendPush sends a push using DefaultConfig.
func SendPush(appName, appKey, appMasterSecret, alertText string) bool {
	return New(DefaultConfig()).SendPush(appName, appKey, appMasterSecret, alertText)
}

// SendPushDefault sends a push with DefaultAlertText using DefaultConfig.
func SendPushDefault(appName, appKey, appMasterSecret string) bool {
	return New(DefaultConfig()).SendPushDefault(appName, appKey, appMasterSecret)
}
