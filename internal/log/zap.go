package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Init via InitDevelopmentLogger or
// InitLogger before any component logs; components receive it (or a named
// child) at construction time rather than importing this package deep down.
var Logger *zap.Logger

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// InitLogger configures the logger from a level string ("debug", "info",
// "warn", "error"). Unknown levels fall back to info. format is "text" or
// "json"; anything else means text.
func InitLogger(level, format string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	Logger, _ = cfg.Build()
}
