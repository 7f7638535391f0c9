package octo

import (
	"log/slog"
	"net/http"
)

// RequestEvent captures one outgoing supplier call. The Authorization header
// is redacted before the event is emitted.
type RequestEvent struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type ResponseEvent struct {
	Request    RequestEvent
	StatusCode int
	Headers    http.Header
	Body       []byte
}

type ErrorEvent struct {
	Request RequestEvent
	Err     error
}

// EventSink receives observability events around every supplier call. Sinks
// are called synchronously; implementations must not block.
type EventSink interface {
	OnRequest(RequestEvent)
	OnResponse(ResponseEvent)
	OnError(ErrorEvent)
}

type NopSink struct{}

func (NopSink) OnRequest(RequestEvent)   {}
func (NopSink) OnResponse(ResponseEvent) {}
func (NopSink) OnError(ErrorEvent)       {}

// SlogSink logs supplier traffic through the application logger.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) OnRequest(e RequestEvent) {
	s.logger.Debug("supplier request",
		"method", e.Method,
		"url", e.URL,
		"body_size", len(e.Body),
	)
}

func (s *SlogSink) OnResponse(e ResponseEvent) {
	s.logger.Debug("supplier response",
		"method", e.Request.Method,
		"url", e.Request.URL,
		"status", e.StatusCode,
		"body_size", len(e.Body),
	)
}

func (s *SlogSink) OnError(e ErrorEvent) {
	s.logger.Error("supplier call failed",
		"method", e.Request.Method,
		"url", e.Request.URL,
		"error", e.Err.Error(),
	)
}
