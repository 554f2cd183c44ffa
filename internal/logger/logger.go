package logger

import (
	"fmt"
	"os"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envProduction = "production"

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init builds the process logger and installs it as zap.L() / zap.S().
// Production writes ECS formatted JSON to stdout, everything else gets zap's
// development console output.
func Init(environment, lvl string) error {
	if err := SetLevel(lvl); err != nil {
		return err
	}

	var logger *zap.Logger
	if environment == envProduction {
		core := ecszap.NewCore(ecszap.NewDefaultEncoderConfig(), os.Stdout, level)
		logger = zap.New(core, zap.AddCaller())
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.Level = level

		var err error
		logger, err = conf.Build()
		if err != nil {
			return fmt.Errorf("conf.Build -> %w", err)
		}
	}

	zap.ReplaceGlobals(logger.With(zap.String("environment", environment)))

	return nil
}

// SetLevel changes the level of the logger installed by Init. It is safe to
// call while the logger is in use.
func SetLevel(lvl string) error {
	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}

	if parsed != level.Level() {
		level.SetLevel(parsed)
	}

	return nil
}

func Level() zapcore.Level {
	return level.Level()
}

func Sync() {
	_ = zap.L().Sync()
}
