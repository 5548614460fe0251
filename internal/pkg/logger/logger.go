package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init builds the process logger. Production gets JSON output at the
// configured level; everything else gets the colored development encoder.
func Init(env, level string) *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if env == "production" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)

		instance, err = cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
	})
	return instance
}

// L returns the process logger, initializing a development logger if Init
// was never called.
func L() *zap.Logger {
	if instance == nil {
		return Init("development", "debug")
	}
	return instance
}
