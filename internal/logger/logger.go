package logger

import (
	"os"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Init initializes the global logger. With an empty logFile output goes to
// the console only; otherwise a rotating JSON log file is added.
func Init(debug bool, logFile string) {
	once.Do(func() {
		log = build(debug, logFile)
	})
}

func build(debug bool, logFile string) *zap.Logger {
	var level zapcore.Level
	var encoderConfig zapcore.EncoderConfig

	if debug {
		level = zapcore.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		level = zapcore.InfoLevel
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	if logFile != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    20, // MB
				MaxBackups: 3,
				MaxAge:     14, // days
			}),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Get returns the global logger
func Get() *zap.Logger {
	if log == nil {
		Init(false, "")
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		log.Sync()
	}
}
