// Package log is the process-wide logging facade. It keeps the call surface
// small (Infof/Errorf/Error/Panic) and routes everything through zap.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var sugar *zap.SugaredLogger

func init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
}

// InitFile mirrors all log output into a rotating file at path.
func InitFile(path string) {
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
	})
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewTee(
		sugar.Desugar().Core(),
		zapcore.NewCore(enc, w, zapcore.InfoLevel),
	)
	sugar = zap.New(core, zap.AddCallerSkip(1)).Sugar()
}

func Infof(format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	sugar.Errorf(format, args...)
}

func Error(err error) {
	sugar.Error(err)
}

func Panic(err error) {
	sugar.Panic(err)
}

func Sync() {
	_ = sugar.Sync()
}
