package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	maxLogSize = 1 << 20 // 1 MB
	timeLayout = "2006-01-02 15:04:05"
)

// Logger records what a prune session did: the listing it loaded, the
// mode transitions and every delete push. The alternate screen owns the
// terminal while a session runs, so entries only ever go to a file.
//
// A nil *Logger and the zero value are valid and discard everything.
type Logger struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewLogger appends to the file at path. Logging never stops a prune
// session, so an empty path or an unopenable file yields a discarding
// logger.
func NewLogger(path string) *Logger {
	if path == "" {
		return &Logger{}
	}
	f, err := openAppend(path)
	if err != nil {
		return &Logger{}
	}
	return &Logger{path: path, file: f}
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{}
}

// Close is safe to call more than once.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.write("DEBUG", format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.write("WARN", format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}
	l.rotateIfNeeded()
	if l.file == nil {
		return
	}

	fmt.Fprintf(l.file, "%s [%s] %s\n", time.Now().Format(timeLayout), level, fmt.Sprintf(format, args...))
}

// backupPath is where the previous log lives after a rotation.
func (l *Logger) backupPath() string {
	return l.path + ".1"
}

// rotateIfNeeded moves a full log to backupPath, replacing any older
// backup, and starts a fresh file. Deletions from the last session stay
// readable in the backup.
func (l *Logger) rotateIfNeeded() {
	info, err := l.file.Stat()
	if err != nil || info.Size() < maxLogSize {
		return
	}

	l.file.Close()
	l.file = nil
	if err := os.Rename(l.path, l.backupPath()); err != nil {
		return
	}
	f, err := openAppend(l.path)
	if err != nil {
		return
	}
	l.file = f
	fmt.Fprintf(l.file, "%s [INFO] rotated previous log to %s\n", time.Now().Format(timeLayout), l.backupPath())
}
