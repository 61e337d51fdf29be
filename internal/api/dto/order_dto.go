package dto

import "time"

// ==================== 请求 ====================

// PlaceOrderReq 下单请求
type PlaceOrderReq struct {
	Items           []PlaceOrderItem       `json:"items" binding:"required,min=1,dive"`
	ShippingAddress map[string]interface{} `json:"shipping_address"`
}

// PlaceOrderItem 下单商品项
type PlaceOrderItem struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// ==================== 卖家订单详情 ====================

// ArtisanOrderDetailResp 卖家视角订单详情
// 只收录属于该卖家商品的订单项
type ArtisanOrderDetailResp struct {
	OrderID    int64                  `json:"order_id"`
	OrderDate  time.Time              `json:"order_date"`
	Status     string                 `json:"status"`
	BuyerName  string                 `json:"buyer_name"`
	BuyerEmail string                 `json:"buyer_email"`
	Address    map[string]interface{} `json:"shipping_address"`
	Items      []ArtisanOrderItemResp `json:"items"`
}

// ArtisanOrderItemResp 卖家视角订单项
type ArtisanOrderItemResp struct {
	ItemID      int64    `json:"item_id"`
	ProductID   int64    `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"image_urls"`
}
