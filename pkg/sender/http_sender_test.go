package sender

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bft-labs/pushcast/pkg/log"
)

type recordCall struct {
	appName    string
	alertText  string
	statusCode int
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordCall
}

func (r *fakeRecorder) Record(appName, alertText string, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordCall{appName, alertText, statusCode})
}

type capturedRequest struct {
	method        string
	contentType   string
	authorization string
	body          string
}

func newServer(t *testing.T, status int) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		got.method = r.Method
		got.contentType = r.Header.Get("Content-Type")
		got.authorization = r.Header.Get("Authorization")
		got.body = string(body)
		w.WriteHeader(status)
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func TestBroadcastSender_Success(t *testing.T) {
	ts, got := newServer(t, http.StatusOK)
	rec := &fakeRecorder{}
	s := NewBroadcastSender(ts.URL, ts.Client(), rec, log.NewNoopLogger())

	out := s.Send(context.Background(), Push{
		AppName:      "Demo",
		AppKey:       "keyA",
		MasterSecret: "secretA",
		AlertText:    "Hello",
	})

	if !out.Succeeded() {
		t.Fatalf("Succeeded() = false, outcome %+v", out)
	}
	if out.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", out.StatusCode)
	}
	if got.method != http.MethodPost {
		t.Errorf("method = %s, want POST", got.method)
	}
	if got.contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got.contentType)
	}
	if got.body != `{"aps":{"alert":"Hello","badge":1,"content-available":1}}` {
		t.Errorf("body = %s", got.body)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(rec.calls))
	}
	if rec.calls[0] != (recordCall{"Demo", "Hello", 200}) {
		t.Errorf("record = %+v", rec.calls[0])
	}
}

func TestBroadcastSender_Authorization(t *testing.T) {
	ts, got := newServer(t, http.StatusOK)
	s := NewBroadcastSender(ts.URL, ts.Client(), nil, nil)

	s.Send(context.Background(), Push{AppName: "Demo", AppKey: "keyA", MasterSecret: "secretA", AlertText: "Hello"})

	encoded, ok := strings.CutPrefix(got.authorization, "Basic ")
	if !ok {
		t.Fatalf("Authorization = %q, want Basic scheme", got.authorization)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode authorization: %v", err)
	}
	if string(decoded) != "keyA:secretA" {
		t.Errorf("credentials = %q, want keyA:secretA", decoded)
	}
}

func TestBroadcastSender_NonOKStatus(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusUnauthorized, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			ts, got := newServer(t, status)
			rec := &fakeRecorder{}
			s := NewBroadcastSender(ts.URL, ts.Client(), rec, log.NewNoopLogger())

			out := s.Send(context.Background(), Push{AppName: "Demo", AppKey: "keyA", MasterSecret: "secretA", AlertText: SilentAlertText})

			if out.Succeeded() {
				t.Error("Succeeded() = true, want false")
			}
			if out.TransportFailed() {
				t.Errorf("TransportFailed() = true, err %v", out.Err)
			}
			if out.StatusCode != status {
				t.Errorf("StatusCode = %d, want %d", out.StatusCode, status)
			}
			if got.body != `{"aps":{"badge":1,"content-available":1}}` {
				t.Errorf("body = %s", got.body)
			}
			if len(rec.calls) != 1 || rec.calls[0].statusCode != status {
				t.Errorf("recorder calls = %+v, want one with status %d", rec.calls, status)
			}
		})
	}
}

func TestBroadcastSender_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	rec := &fakeRecorder{}
	s := NewBroadcastSender(url, http.DefaultClient, rec, log.NewNoopLogger())

	out := s.Send(context.Background(), Push{AppName: "Demo", AppKey: "keyA", MasterSecret: "secretA", AlertText: "Hello"})

	if out.Succeeded() {
		t.Error("Succeeded() = true, want false")
	}
	if !out.TransportFailed() {
		t.Error("TransportFailed() = false, want true")
	}
	if len(rec.calls) != 0 {
		t.Errorf("recorder calls = %d, want 0", len(rec.calls))
	}
}

type failingClient struct{ err error }

func (c failingClient) Do(*http.Request) (*http.Response, error) { return nil, c.err }

func TestBroadcastSender_ClientErrorIsWrapped(t *testing.T) {
	boom := errors.New("dns failure")
	s := NewBroadcastSender(DefaultEndpoint, failingClient{err: boom}, nil, log.NewNoopLogger())

	out := s.Send(context.Background(), Push{AppName: "Demo"})

	if !errors.Is(out.Err, boom) {
		t.Errorf("Err = %v, want wrapped %v", out.Err, boom)
	}
	if s.SendPush(context.Background(), Push{AppName: "Demo"}) {
		t.Error("SendPush() = true, want false")
	}
}

func TestBroadcastSender_MalformedEndpoint(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewBroadcastSender("://no-scheme", http.DefaultClient, rec, log.NewNoopLogger())

	out := s.Send(context.Background(), Push{AppName: "Demo", AlertText: "Hello"})

	if !out.TransportFailed() {
		t.Error("TransportFailed() = false, want true")
	}
	if len(rec.calls) != 0 {
		t.Errorf("recorder calls = %d, want 0", len(rec.calls))
	}
}

func TestBroadcastSender_TransportFailureIsDiagnosed(t *testing.T) {
	var diag strings.Builder
	s := NewBroadcastSender(DefaultEndpoint, failingClient{err: errors.New("refused")}, nil, log.NewZerologAdapterWithWriter(&diag))

	s.Send(context.Background(), Push{AppName: "Demo"})

	if !strings.Contains(diag.String(), "push request failed") || !strings.Contains(diag.String(), "refused") {
		t.Errorf("diagnostic = %q", diag.String())
	}
}
