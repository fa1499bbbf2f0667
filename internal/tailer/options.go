package tailer

import (
	"log/slog"
	"time"

	"linetail/internal/logging"
	"linetail/internal/scan"
	"linetail/internal/textenc"
)

// DefaultPollInterval is how long Follow waits between stat cycles when the
// caller does not override it.
const DefaultPollInterval = time.Second

type options struct {
	encoding     string
	bufferSize   int
	pollInterval time.Duration
	logger       *slog.Logger
}

// Option adjusts how ReadLast and Follow behave.
type Option func(*options)

// WithEncoding names the character encoding used to decode file bytes.
// Defaults to UTF-8.
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// WithBufferSize sets the chunk size for backward scans and incremental
// reads. Values below 1 keep the default.
func WithBufferSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.bufferSize = size
		}
	}
}

// WithPollInterval sets how long Follow sleeps between watch cycles.
// Non-positive values keep the default.
func WithPollInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.pollInterval = interval
		}
	}
}

// WithLogger routes follow lifecycle events (truncation, reopen) to the
// given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		encoding:     textenc.Default,
		bufferSize:   scan.DefaultBufferSize,
		pollInterval: DefaultPollInterval,
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
