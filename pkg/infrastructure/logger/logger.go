package logger

import (
	"os"
	"reactive-todo-backend/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger from config.C.Log and installs it as
// the zap global.
func New() *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if config.C.Log.Level != "" {
		if err := level.Set(config.C.Log.Level); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stdout),
		level,
	)

	opts := []zap.Option{zap.AddCaller()}
	if config.C.Log.Development {
		opts = append(opts, zap.Development())
	}

	l := zap.New(core, opts...)
	if config.C.AppName != "" {
		l = l.Named(config.C.AppName)
	}
	zap.ReplaceGlobals(l)

	return l.Sugar()
}
