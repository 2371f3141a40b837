package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日誌設定
type Options struct {
	Level  string // debug | info | warn | error
	Format string // json | console
}

// New 建立 zap logger
//
// json 使用 production 設定；console 使用 development 設定（彩色、易讀）。
func New(opts Options) (*zap.Logger, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Level))
	if name == "" {
		name = "info"
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var cfg zap.Config
	switch strings.ToLower(opts.Format) {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json", "":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
