package pathview

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop().Sugar()
	once   sync.Once
)

// NewLogger builds the console logger used by the command; debug lowers the level to Debug.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if debug {
		lvl = zapcore.DebugLevel
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !debug,
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return zl.Sugar(), nil
}

// SetLogger replaces the package logger; nil restores the no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	logger.Debugf(format, args...)
}

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		DebugLog(format, args...)
	})
}
