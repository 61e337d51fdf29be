package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
const (
	OrderStatusPending  = "pending"  // 已下单待支付
	OrderStatusPaid     = "paid"     // 已支付
	OrderStatusCanceled = "canceled" // 已取消（超时未支付被清理）
)

// ==================== Order 订单主表 ====================

// Order 订单
// RazorpayPaymentID 是支付完成标记：仅在支付成功后非空，
// 买家/卖家的订单列表都只展示该字段非空的订单
type Order struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"index;not null" json:"user_id"`

	// 支付（网关侧订单号在发起支付时写入，支付流水号在验签通过后写入）
	RazorpayOrderID   string  `gorm:"size:64;index" json:"razorpay_order_id"`
	RazorpayPaymentID *string `gorm:"size:64" json:"razorpay_payment_id"`

	// 状态与金额（分为单位存储）
	Status      string `gorm:"size:32;index;default:pending" json:"status"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `gorm:"size:10;default:INR" json:"currency"`

	// 收货地址（PostgreSQL JSONB）
	ShippingAddress datatypes.JSONMap `gorm:"type:jsonb" json:"shipping_address"`

	// 下单时间
	OrderDate time.Time `gorm:"index" json:"order_date"`

	// 审计字段
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	User  User        `gorm:"foreignKey:UserID" json:"user"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (*Order) TableName() string {
	return "orders"
}

// IsPaid 是否已支付
func (o *Order) IsPaid() bool {
	return o.RazorpayPaymentID != nil
}

// GetTotal 获取总金额（元）
func (o *Order) GetTotal() float64 {
	return float64(o.TotalAmount) / 100
}

// ==================== OrderItem 订单项 ====================

// OrderItem 订单项，价格为下单时的快照
type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"index;not null" json:"order_id"`
	ProductID int64 `gorm:"index;not null" json:"product_id"`

	Quantity    int   `gorm:"default:1" json:"quantity"`
	PriceAmount int64 `json:"price_amount"`

	// 审计字段
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

func (*OrderItem) TableName() string {
	return "order_items"
}

// GetPrice 获取单价（元）
func (i *OrderItem) GetPrice() float64 {
	return float64(i.PriceAmount) / 100
}
