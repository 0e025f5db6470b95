// Package oplog timestamps and persists operation records for a terminal
// session. The core ledger never depends on it; the terminal layer reports
// each operation's inputs and outcome through a Logger.
package oplog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ryz-labs/wallet-ledger/internal/ledger"
)

// Logger writes structured operation records to a session log file.
type Logger struct {
	log  *logrus.Logger
	path string
}

// New creates a session logger writing to a timestamped file under dir. The
// directory is created if missing. An invalid level falls back to info.
func New(dir, level string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("terminal_%s.log", time.Now().Format("20060102_150405")))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log := logrus.New()
	log.SetOutput(file)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &Logger{log: log, path: path}, nil
}

// Discard returns a logger that drops all output. Useful for tests.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{log: log}
}

// Path reports the session log file location. Empty for a Discard logger.
func (l *Logger) Path() string {
	return l.path
}

// Operation records the inputs and outcome of one ledger apply call.
func (l *Logger) Operation(kind ledger.Kind, address string, amount, balance int64, err error) {
	entry := l.log.WithFields(logrus.Fields{
		"kind":    kind.String(),
		"address": address,
		"amount":  amount,
	})
	if err != nil {
		entry.WithError(err).Error("operation rejected")
		return
	}
	entry.WithField("balance", balance).Info("operation accepted")
}

// Event records a session lifecycle event such as start, exit, or export.
func (l *Logger) Event(message string) {
	l.log.Info(message)
}

// WriteHistory persists rendered history lines to path, one per line,
// replacing any previous export.
func WriteHistory(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
