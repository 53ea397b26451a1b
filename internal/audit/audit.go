// Package audit appends one "timestamp,username,command" line per executed
// command to the configured log file.
package audit

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TimestampLayout is ISO-8601 in UTC with second precision.
const TimestampLayout = time.RFC3339

// Recorder accepts raw command lines.
type Recorder interface {
	Record(action string)
}

// FileSystem abstracts the append-open of the log destination for testability.
type FileSystem interface {
	OpenAppend(path string) (io.WriteCloser, error)
}

// OSFileSystem opens log files on the local filesystem.
type OSFileSystem struct{}

// OpenAppend opens path for appending, creating it if needed.
func (OSFileSystem) OpenAppend(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// Logger writes audit entries. Write failures are reported to the diagnostic
// logger only and never reach the caller.
type Logger struct {
	fs       FileSystem
	path     string
	username string
	now      func() time.Time
	diag     *zap.Logger

	mu sync.Mutex
}

// Option configures a Logger.
type Option func(*Logger)

// WithFileSystem replaces the filesystem used to open the log file.
func WithFileSystem(fs FileSystem) Option {
	return func(l *Logger) { l.fs = fs }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithDiagnostics sets the logger that receives write failures.
func WithDiagnostics(diag *zap.Logger) Option {
	return func(l *Logger) { l.diag = diag }
}

// NewLogger creates an audit logger appending to path on behalf of username.
func NewLogger(path, username string, opts ...Option) *Logger {
	l := &Logger{
		fs:       OSFileSystem{},
		path:     path,
		username: username,
		now:      time.Now,
		diag:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) Username() string { return l.username }

// Record appends an entry for action, timestamped now.
func (l *Logger) Record(action string) {
	line := FormatEntry(l.now(), l.username, action)

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.fs.OpenAppend(l.path)
	if err != nil {
		l.diag.Debug("audit log unavailable", zap.String("path", l.path), zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := io.WriteString(f, line); err != nil {
		l.diag.Debug("audit write failed", zap.String("path", l.path), zap.Error(err))
	}
}

// FormatEntry renders one newline-terminated audit line. The action is
// written verbatim.
func FormatEntry(ts time.Time, username, action string) string {
	return ts.UTC().Format(TimestampLayout) + "," + username + "," + action + "\n"
}

// Discard is a Recorder that drops every entry.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(string) {}
