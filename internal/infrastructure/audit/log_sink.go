package audit

import (
	"context"
	"log/slog"
)

// LogSink echoes audit events to the process logger. It is the default sink
// when no audit database is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(_ context.Context, e Event) error {
	s.logger.Info("instruction processed",
		"event_id", e.ID,
		"received_at", e.ReceivedAt,
		"instruction", e.Instruction,
		"status", e.Status,
		"status_code", e.StatusCode,
	)
	return nil
}
