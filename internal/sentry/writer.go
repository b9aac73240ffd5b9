package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level represents the severity level for the sentry writer.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// breadcrumbCategory groups the shell's log tee under one heading in the
// event timeline, next to the toolbar/rtl tags from SetContext.
const breadcrumbCategory = "shell-log"

// Writer wraps the shell's log file writer and forwards each line to
// Sentry. Errors become Sentry events; warnings and info become
// shell-log breadcrumbs attached to the next event.
type Writer struct {
	inner io.Writer
	level Level
}

// NewWriter creates a Writer that tees to inner and forwards to Sentry.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level}
}

func (w *Writer) Write(p []byte) (int, error) {
	// Always write to the original destination first.
	n, err := w.inner.Write(p)

	if !enabled {
		return n, err
	}

	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return n, err
	}

	switch w.level {
	case LevelError:
		gosentry.CaptureMessage(msg)
	case LevelWarning:
		breadcrumb(gosentry.LevelWarning, msg)
	case LevelInfo:
		breadcrumb(gosentry.LevelInfo, msg)
	}

	return n, err
}

func breadcrumb(level gosentry.Level, msg string) {
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    level,
		Category: breadcrumbCategory,
		Message:  msg,
	})
}
