package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// NewLogger builds the process logger and makes it the slog default. "json" emits structured
// lines for log collectors, anything else a colored single line format for local development.
func NewLogger(format string) *slog.Logger {
	return newLogger(os.Stderr, format, ParseLogLevel(GetEnv("LOG_LEVEL", "")))
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	var logger *slog.Logger
	if format == "json" {
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: JSONLoggerAttributeReplacer,
		}))
	} else {
		logger = slog.New(NewLocalDevHandler(w, level, true))
	}
	slog.SetDefault(logger)
	return logger
}

// ParseLogLevel defaults to debug, the level used during development.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelDebug
}

// JSONLoggerAttributeReplacer renames "msg" and "level" to "message" and "severity", the keys
// most log collectors pick up by default.
func JSONLoggerAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
		level, _ := a.Value.Any().(slog.Level)
		switch {
		case level < slog.LevelInfo:
			a.Value = slog.StringValue("DEBUG")
		case level < slog.LevelWarn:
			a.Value = slog.StringValue("INFO")
		case level < slog.LevelError:
			a.Value = slog.StringValue("WARNING")
		default:
			a.Value = slog.StringValue("ERROR")
		}
	}
	return a
}

// LocalDevHandler prints "15:04:05 LEVEL message key=value..." lines. Attributes are rendered by
// an inner text handler.
type LocalDevHandler struct {
	inner    slog.Handler
	useColor bool

	mu *sync.Mutex
	w  io.Writer
}

func NewLocalDevHandler(w io.Writer, level slog.Level, useColor bool) *LocalDevHandler {
	inner := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return &LocalDevHandler{inner: inner, useColor: useColor, mu: &sync.Mutex{}, w: w}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer
	level := r.Level.String()
	if h.useColor {
		level = colorLevel(r.Level)
	}
	fmt.Fprintf(&buf, "%s %s %s ", r.Time.Format("15:04:05.000"), level, r.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.inner.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{inner: h.inner.WithAttrs(attrs), useColor: h.useColor, mu: h.mu, w: h.w}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{inner: h.inner.WithGroup(name), useColor: h.useColor, mu: h.mu, w: h.w}
}

const (
	colorRed     = 31
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
)

func colorLevel(level slog.Level) string {
	color := colorRed
	switch {
	case level < slog.LevelInfo:
		color = colorMagenta
	case level < slog.LevelWarn:
		color = colorBlue
	case level < slog.LevelError:
		color = colorYellow
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, level.String())
}
