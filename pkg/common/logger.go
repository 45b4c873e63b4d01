package common

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Log(message string)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
func NewFileLogger(path string) Logger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		fmt.Printf("Error: %s. Logging switched to console.\n", err.Error())
		return NewConsoleLogger()
	}
	return &zapLogger{sugar: logger.Sugar()}
}

// NewConsoleLogger writes human-readable logs to stderr.
func NewConsoleLogger() Logger {
	logger, err := zap.NewDevelopment(zap.WithCaller(false))
	if err != nil {
		return NewNopLogger()
	}
	return &zapLogger{sugar: logger.Sugar()}
}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (z *zapLogger) Log(message string) {
	z.sugar.Info(message)
}
