// Package observability provides the diagnostic logger for the CLI.
package observability

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rotated diagnostic log under the state directory.
const LogFileName = "resume-dash.log"

// NewLogger builds the client logger: a JSON file core (rotated) that always
// records at Info, plus a console core on stderr that stays quiet at Warn
// unless verbose raises it to Debug. Screen output goes through the renderer,
// not zap; the console core exists for diagnostics only.
func NewLogger(stateDir string, verbose bool) *zap.Logger {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(stateDir, LogFileName),
		MaxSize:    5,  // Megabytes
		MaxBackups: 3,  // Files
		MaxAge:     30, // Days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.LevelKey = "level"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	consoleLevel := zap.WarnLevel
	if verbose {
		consoleLevel = zap.DebugLevel
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)

	return zap.New(zapcore.NewTee(fileCore, consoleCore))
}
