package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Initialize sets up the global logger. Production deployments
// (APP_ENV=production) get JSON output at info level; everything else
// gets the colored development console at debug level.
func Initialize() {
	once.Do(func() {
		var cfg zap.Config

		if os.Getenv("APP_ENV") == "production" {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		base, err := cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		sugar = base.Sugar()
	})
}

// Get retrieves the global logger, initializing it on first use.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Initialize()
	}
	return sugar
}
