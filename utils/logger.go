package utils

import (
	"doctorportal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger sets up the logging configuration for the environment in cfg.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config

	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// An explicit LOG_LEVEL wins over the environment default.
	if cfg.LogLevel != "" {
		if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
			zcfg.Level = lvl
		}
	}

	return zcfg.Build()
}
