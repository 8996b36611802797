package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = zap.NewNop()

// Init builds the global logger. In production it writes JSON, otherwise the
// console encoder. When logFile is set, entries are also written to a
// rotating file.
func Init(env, logFile string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	if logFile != "" {
		rotating := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			rotating,
			zap.InfoLevel,
		)
		l = l.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	Logger = l
	return nil
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	if err := Logger.Sync(); err != nil && !isStdStream(err) {
		os.Stderr.WriteString("failed to flush log entries: " + err.Error() + "\n")
	}
}

// syncing stdout/stderr fails on some terminals; that is not worth reporting
func isStdStream(err error) bool {
	pe, ok := err.(*os.PathError)
	return ok && (pe.Path == "/dev/stdout" || pe.Path == "/dev/stderr")
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}
