// file: logger/logger.go
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, _ := config.Build(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

func Info(msg string, kv ...interface{}) {
	sugar.Infow(msg, kv...)
}

func Warn(msg string, kv ...interface{}) {
	sugar.Warnw(msg, kv...)
}

func Error(msg string, kv ...interface{}) {
	sugar.Errorw(msg, kv...)
}

func Debug(msg string, kv ...interface{}) {
	sugar.Debugw(msg, kv...)
}

func Fatal(msg string, kv ...interface{}) {
	sugar.Fatalw(msg, kv...)
}

func Sync() {
	_ = sugar.Sync()
}
