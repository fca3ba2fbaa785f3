package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = level
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// SetLevel 調整全域 log 等級，無法解析時維持原設定並回傳錯誤
func SetLevel(text string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// WithComponent 回傳帶有 component 欄位的 logger，供 handler、service、cache、worker 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
