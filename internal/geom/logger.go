package geom

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[log.Logger]

func init() {
	loggerPtr.Store(log.New(io.Discard))
}

// SetLogger installs the logger used for kernel diagnostics. By default the
// package produces no output; diagnostics are emitted at debug level and
// only describe decisions that are otherwise invisible, such as degenerate
// fallbacks and similarity rejections. Pass nil to restore silence.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	loggerPtr.Store(l)
}

func logger() *log.Logger {
	return loggerPtr.Load()
}
