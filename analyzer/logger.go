package analyzer

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultVerbosity = "info"

// NewLogger builds a console logger writing to w. Unknown verbosity values
// fall back to info.
func NewLogger(w io.Writer, verbosity string) *zap.SugaredLogger {
	if verbosity == "" {
		verbosity = defaultVerbosity
	}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if err := level.UnmarshalText([]byte(verbosity)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Sugar()
}
