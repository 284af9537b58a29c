package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NewLogger ...
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		err := level.UnmarshalText([]byte(conf.Level))
		if err != nil {
			panic(err)
		}
	}

	logConf := zap.NewProductionConfig()
	logConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := logConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
