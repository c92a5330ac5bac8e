package pushlog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bft-labs/pushcast/pkg/log"
)

// FileRecorder appends push blocks to a text file.
//
// Writes from one FileRecorder are serialized and each block is written
// with a single call, so concurrent senders sharing a recorder never
// interleave. Separate processes appending to the same file are not
// coordinated.
type FileRecorder struct {
	path   string
	now    func() time.Time
	logger log.Logger

	mu sync.Mutex
}

// Option configures a FileRecorder.
type Option func(*FileRecorder)

// WithClock overrides the time source used for block timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *FileRecorder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger used to report write failures.
func WithLogger(logger log.Logger) Option {
	return func(r *FileRecorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewFileRecorder creates a recorder for path. An empty path means
// DefaultFileName in the working directory.
func NewFileRecorder(path string, opts ...Option) *FileRecorder {
	if path == "" {
		path = DefaultFileName
	}
	r := &FileRecorder{
		path:   path,
		now:    time.Now,
		logger: log.NewZerologAdapter(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends one block. Failures are logged and swallowed.
func (r *FileRecorder) Record(appName, alertText string, statusCode int) {
	block := FormatBlock(appName, alertText, statusCode, r.now())
	if err := r.append(block); err != nil {
		r.logger.Error("could not log push",
			log.String("path", r.path),
			log.String("app", appName),
			log.Err(err),
		)
	}
}

// Path returns the log file path.
func (r *FileRecorder) Path() string {
	return r.path
}

func (r *FileRecorder) append(block string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open push log: %w", err)
	}
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return fmt.Errorf("write push log: %w", err)
	}
	return f.Close()
}
