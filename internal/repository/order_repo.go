package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"vividhands_dev_v1_202601/internal/model"
)

// ==================== 接口定义 ====================

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// 基础 CRUD
	Create(ctx context.Context, order *model.Order) error
	GetByIDWithItems(ctx context.Context, id int64) (*model.Order, error)
	GetByIDWithItemsAndProductImages(ctx context.Context, id int64) (*model.Order, error)
	GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*model.Order, error)

	// 买家侧查询
	ListPaidByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByDateRangeAndUser(ctx context.Context, start, end time.Time, userID int64) ([]model.Order, error)

	// 卖家侧查询（通过订单项商品的归属关系传递）
	ListPaidByArtisan(ctx context.Context, artisanID int64) ([]model.Order, error)

	// 支付
	SetRazorpayOrderID(ctx context.Context, orderID int64, razorpayOrderID string) error
	MarkPaid(ctx context.Context, orderID int64, paymentID string) error

	// 清理
	CancelStaleUnpaid(ctx context.Context, olderThan time.Time) (int64, error)
}

// ==================== 仓储实现 ====================

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) GetByIDWithItems(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) GetByIDWithItemsAndProductImages(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("razorpay_order_id = ?", razorpayOrderID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListPaidByUser 买家订单列表，仅返回支付完成标记非空的订单
func (r *orderRepo) ListPaidByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ? AND razorpay_payment_id IS NOT NULL", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListByDateRangeAndUser(ctx context.Context, start, end time.Time, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_date BETWEEN ? AND ? AND user_id = ?", start, end, userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// ListPaidByArtisan 卖家订单列表
// 通过订单项 -> 商品 -> 卖家的归属链筛选，且仅返回已支付订单
func (r *orderRepo) ListPaidByArtisan(ctx context.Context, artisanID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.artisan_id = ? AND orders.razorpay_payment_id IS NOT NULL", artisanID).
		Distinct("orders.*").
		Order("orders.order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) SetRazorpayOrderID(ctx context.Context, orderID int64, razorpayOrderID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("razorpay_order_id", razorpayOrderID).Error
}

func (r *orderRepo) MarkPaid(ctx context.Context, orderID int64, paymentID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"razorpay_payment_id": paymentID,
			"status":              model.OrderStatusPaid,
		}).Error
}

// CancelStaleUnpaid 取消超时未支付订单，返回受影响行数
func (r *orderRepo) CancelStaleUnpaid(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("razorpay_payment_id IS NULL AND status = ? AND order_date < ?",
			model.OrderStatusPending, olderThan).
		Update("status", model.OrderStatusCanceled)
	return result.RowsAffected, result.Error
}
