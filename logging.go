package vtkernel

import (
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger is the diagnostic sink for conditions that must never abort
// parsing: unrecognized CSI finals, SGR numbers, and mode numbers. The
// default logs once per distinct (kind, code) pair to stderr via
// charmbracelet/log so a chatty or hostile stream can't flood the log.
type Logger interface {
	UnknownSequence(kind string, code int)
}

// defaultLogger wraps a charmbracelet/log.Logger with dedup-by-code.
type defaultLogger struct {
	mu   sync.Mutex
	seen map[string]struct{}
	log  *log.Logger
}

// NewLogger returns the default Logger, writing to stderr at Warn level.
func NewLogger() Logger {
	return &defaultLogger{
		seen: make(map[string]struct{}),
		log:  log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "vtkernel"}),
	}
}

func (l *defaultLogger) UnknownSequence(kind string, code int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := kind + ":" + strconv.Itoa(code)
	if _, ok := l.seen[key]; ok {
		return
	}
	l.seen[key] = struct{}{}
	l.log.Warn("unrecognized sequence", "kind", kind, "code", code)
}

// nopLogger discards everything; used by tests that don't care about
// diagnostics.
type nopLogger struct{}

func (nopLogger) UnknownSequence(string, int) {}
