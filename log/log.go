package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	sentrypkg "github.com/kastheco/swerve/internal/sentry"
)

var (
	// InfoLog logs informational messages.
	InfoLog *log.Logger
	// WarningLog logs warnings worth surfacing but not fatal.
	WarningLog *log.Logger
	// ErrorLog logs errors. When sentry is enabled these are captured as events.
	ErrorLog *log.Logger

	globalLogFile *os.File
	logFileName   = filepath.Join(os.TempDir(), "swerve.log")

	enabled bool
)

// Initialize sets up file-backed loggers. Until called, all loggers discard.
// When forwardTelemetry is true, log writes are teed into sentry as
// breadcrumbs (info/warning) or events (error).
func Initialize(forwardTelemetry bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		// Fall back to discard loggers; the UI owns stdout/stderr.
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
		return
	}

	var infoW, warnW, errW io.Writer = f, f, f
	if forwardTelemetry {
		infoW = sentrypkg.NewWriter(f, sentrypkg.LevelInfo)
		warnW = sentrypkg.NewWriter(f, sentrypkg.LevelWarning)
		errW = sentrypkg.NewWriter(f, sentrypkg.LevelError)
	}

	InfoLog = log.New(infoW, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(warnW, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(errW, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f
	enabled = true
}

// Close flushes and closes the log file. Prints the log location if anything
// was written during this run.
func Close() {
	if !enabled || globalLogFile == nil {
		return
	}
	if stat, err := globalLogFile.Stat(); err == nil && stat.Size() > 0 {
		fmt.Println("swerve log:", logFileName)
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	enabled = false
}

func init() {
	// Safe defaults so packages can log before Initialize runs (tests, etc.).
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
}
