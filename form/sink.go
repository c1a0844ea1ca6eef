package form

import (
	"log/slog"
)

// Sink receives the outcome of a submission. Log is the diagnostic log,
// Error the diagnostic error log. Neither is shown to the visitor.
type Sink interface {
	Log(v any)
	Error(err error)
}

// SlogSink writes outcomes through a structured logger.
type SlogSink struct {
	Logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{Logger: logger}
}

func (s *SlogSink) Log(v any) {
	s.Logger.Info("Subscription response", "data", v)
}

func (s *SlogSink) Error(err error) {
	s.Logger.Error("Subscription failed", "error", err)
}
