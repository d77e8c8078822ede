package analyzer

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Analyzer runs the load, calculate and print stages for one invocation.
// Human-readable results go to out, diagnostics go to the logger.
type Analyzer struct {
	out io.Writer
	l   *zap.SugaredLogger
}

func New(out io.Writer, l *zap.SugaredLogger) *Analyzer {
	if out == nil {
		out = os.Stdout
	}
	if l == nil {
		l = NewLogger(os.Stderr, defaultVerbosity)
	}
	return &Analyzer{
		out: out,
		l:   l,
	}
}

// Sync flushes buffered log entries.
func (a *Analyzer) Sync() {
	_ = a.l.Sync()
}
