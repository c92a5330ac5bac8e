package sender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bft-labs/pushcast/pkg/log"
)

// BroadcastSender implements Sender with a single JSON POST.
type BroadcastSender struct {
	endpoint string
	client   HTTPClient
	recorder Recorder
	logger   log.Logger
}

var _ Sender = (*BroadcastSender)(nil)

// NewBroadcastSender creates a sender posting to endpoint.
// A nil recorder or logger is replaced by a no-op implementation.
func NewBroadcastSender(endpoint string, client HTTPClient, recorder Recorder, logger log.Logger) *BroadcastSender {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &BroadcastSender{
		endpoint: endpoint,
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

// Send posts the push. The recorder is invoked only when a response status
// was obtained.
func (s *BroadcastSender) Send(ctx context.Context, p Push) Outcome {
	status, err := s.post(ctx, p)
	if err != nil {
		s.logger.Error("push request failed",
			log.String("app", p.AppName),
			log.String("endpoint", s.endpoint),
			log.Err(err),
		)
		return Outcome{Err: err}
	}

	s.recorder.Record(p.AppName, p.AlertText, status)

	if status != http.StatusOK {
		s.logger.Warn("push rejected",
			log.String("app", p.AppName),
			log.Int("status", status),
		)
	} else {
		s.logger.Debug("push sent", log.String("app", p.AppName))
	}
	return Outcome{StatusCode: status}
}

// SendPush is the boolean form of Send.
func (s *BroadcastSender) SendPush(ctx context.Context, p Push) bool {
	return s.Send(ctx, p).Succeeded()
}

func (s *BroadcastSender) post(ctx context.Context, p Push) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(p.Payload()))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-type", "application/json")
	req.Header.Set("Authorization", p.Authorization())

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
