package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger shared by the handlers, services and
// repositories. It stays a no-op until Initialize is called, so packages can
// log unconditionally and tests run silent.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger at the given level
// (LOG_LEVEL in config.env).
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}
