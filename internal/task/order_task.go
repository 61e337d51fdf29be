package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"vividhands_dev_v1_202601/internal/repository"
	"vividhands_dev_v1_202601/pkg/logger"
)

// ==================== OrderSweepTask 未支付订单清理 ====================

// OrderSweepTask 定时取消超时未支付订单
// 未支付订单本来就不出现在任何列表里，清理只是把表维护干净
type OrderSweepTask struct {
	cron      *cron.Cron
	orderRepo repository.OrderRepository
	maxAge    time.Duration
}

// NewOrderSweepTask 创建清理任务
func NewOrderSweepTask(orderRepo repository.OrderRepository, maxAge time.Duration) *OrderSweepTask {
	return &OrderSweepTask{
		cron:      cron.New(cron.WithSeconds()), // 支持秒级控制
		orderRepo: orderRepo,
		maxAge:    maxAge,
	}
}

// Start 启动任务，每小时整点执行一次
func (t *OrderSweepTask) Start() {
	_, _ = t.cron.AddFunc("0 0 * * * *", func() {
		t.runOnce()
	})
	t.cron.Start()
	logger.L().Info("订单清理任务已启动", zap.Duration("max_age", t.maxAge))
}

// Stop 停止任务
func (t *OrderSweepTask) Stop() {
	t.cron.Stop()
}

// runOnce 执行一次清理
func (t *OrderSweepTask) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := t.orderRepo.CancelStaleUnpaid(ctx, time.Now().Add(-t.maxAge))
	if err != nil {
		logger.L().Error("订单清理失败", zap.Error(err))
		return
	}
	if n > 0 {
		logger.L().Info("已取消超时未支付订单", zap.Int64("count", n))
	}
}
