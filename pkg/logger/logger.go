package logger

import (
	"go.uber.org/zap"
)

// 全局 Logger
var log = zap.NewNop()

// Init 初始化全局 Logger
// mode 为 debug 时输出开发格式日志
func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "debug" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	log = l
	zap.ReplaceGlobals(l)
	return nil
}

// L 获取全局 Logger
func L() *zap.Logger {
	return log
}

// Sync 刷新缓冲日志
func Sync() {
	_ = log.Sync()
}
