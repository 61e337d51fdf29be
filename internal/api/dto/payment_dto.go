package dto

// ==================== 支付 ====================

// CreatePaymentResp 发起支付响应（前端用 Razorpay 订单号拉起收银台）
type CreatePaymentResp struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id"`
}

// VerifyPaymentReq 支付验签请求
type VerifyPaymentReq struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
