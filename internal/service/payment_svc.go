package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/repository"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

// ==================== PaymentService 支付服务 ====================

// PaymentConfig 支付网关配置
type PaymentConfig struct {
	KeyID     string
	KeySecret string
}

// PaymentService 支付服务
// 负责在网关创建支付单、验签回传并落支付完成标记
type PaymentService struct {
	cfg         *PaymentConfig
	client      *resty.Client
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewPaymentService 创建支付服务
func NewPaymentService(
	cfg *PaymentConfig,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *PaymentService {
	client := resty.New().
		SetBaseURL(razorpayBaseURL).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetTimeout(10 * time.Second).
		SetRetryCount(3)

	return &PaymentService{
		cfg:         cfg,
		client:      client,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// ==================== 发起支付 ====================

// razorpayOrderResp 网关创建订单响应
type razorpayOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateGatewayOrder 为本地订单在网关创建支付单
// 发起方必须是订单归属买家
func (s *PaymentService) CreateGatewayOrder(ctx context.Context, orderID int64, tokenEmail string) (*dto.CreatePaymentResp, error) {
	order, err := s.orderRepo.GetByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	user, err := s.userRepo.GetByEmail(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}
	if err := CheckOrderOwner(user, order); err != nil {
		return nil, err
	}

	var gatewayOrder razorpayOrderResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"amount":   order.TotalAmount,
			"currency": order.Currency,
			"receipt":  fmt.Sprintf("order_%d", order.ID),
		}).
		SetResult(&gatewayOrder).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("支付网关请求失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("支付网关返回 %d: %s", resp.StatusCode(), resp.String())
	}

	if err := s.orderRepo.SetRazorpayOrderID(ctx, order.ID, gatewayOrder.ID); err != nil {
		return nil, err
	}

	return &dto.CreatePaymentResp{
		RazorpayOrderID: gatewayOrder.ID,
		Amount:          gatewayOrder.Amount,
		Currency:        gatewayOrder.Currency,
		KeyID:           s.cfg.KeyID,
	}, nil
}

// ==================== 验签 ====================

// VerifyPayment 校验网关回传签名，通过后写入支付完成标记并扣减库存
func (s *PaymentService) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentReq) error {
	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return ErrInvalidCredentials
	}

	order, err := s.orderRepo.GetByRazorpayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNotFound
	}

	if err := s.orderRepo.MarkPaid(ctx, order.ID, req.RazorpayPaymentID); err != nil {
		return err
	}

	for _, item := range order.Items {
		if err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// verifySignature HMAC-SHA256(orderID|paymentID, secret) 与回传签名恒等比较
func (s *PaymentService) verifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
