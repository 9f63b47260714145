package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// New builds the process logger and installs it as the slog default.
// format is "text" or "json".
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	if w == nil {
		w = os.Stdout
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, nil
}

// QueryLogger times one store operation.
type QueryLogger struct {
	logger    *slog.Logger
	operation string
	start     time.Time
}

func NewQueryLogger(logger *slog.Logger, operation string) *QueryLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{logger: logger, operation: operation, start: time.Now()}
}

// Log reports the outcome: debug on success, error otherwise.
func (l *QueryLogger) Log(err error) {
	took := time.Since(l.start)
	if err != nil {
		l.logger.Error("query failed",
			slog.String("type", "db"),
			slog.String("operation", l.operation),
			slog.Duration("took", took),
			slog.Any("error", err),
		)
		return
	}
	l.logger.Debug("query executed",
		slog.String("type", "db"),
		slog.String("operation", l.operation),
		slog.Duration("took", took),
	)
}
