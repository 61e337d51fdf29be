package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

func seedPaymentFixture(t *testing.T) (*PaymentService, repository.OrderRepository, repository.ProductRepository) {
	t.Helper()
	db := setupTestDB(t)

	if err := db.Create(&model.User{ID: 7, Email: "a@x.com", Password: "x"}).Error; err != nil {
		t.Fatalf("写入买家失败: %v", err)
	}
	if err := db.Create(&model.Product{ID: 10, ArtisanID: 3, Name: "Clay Pot", PriceAmount: 2500, Stock: 5}).Error; err != nil {
		t.Fatalf("写入商品失败: %v", err)
	}
	order := model.Order{
		ID: 50, UserID: 7, Status: model.OrderStatusPending,
		RazorpayOrderID: "rzp_test_50", TotalAmount: 5000,
		OrderDate: time.Now(),
		Items:     []model.OrderItem{{ProductID: 10, Quantity: 2, PriceAmount: 2500}},
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("写入订单失败: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	svc := NewPaymentService(
		&PaymentConfig{KeyID: "key_test", KeySecret: "secret_test"},
		orderRepo, repository.NewUserRepository(db), productRepo,
	)
	return svc, orderRepo, productRepo
}

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPayment_MarksPaidAndDecrementsStock(t *testing.T) {
	svc, orderRepo, productRepo := seedPaymentFixture(t)
	ctx := context.Background()

	req := &dto.VerifyPaymentReq{
		RazorpayOrderID:   "rzp_test_50",
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: signPayment("secret_test", "rzp_test_50", "pay_test_1"),
	}
	if err := svc.VerifyPayment(ctx, req); err != nil {
		t.Fatalf("验签失败: %v", err)
	}

	order, _ := orderRepo.GetByIDWithItems(ctx, 50)
	if !order.IsPaid() || *order.RazorpayPaymentID != "pay_test_1" {
		t.Fatalf("支付完成标记未写入: %+v", order)
	}
	if order.Status != model.OrderStatusPaid {
		t.Fatalf("状态应为已支付, 实际: %s", order.Status)
	}

	product, _ := productRepo.GetByID(ctx, 10)
	if product.Stock != 3 {
		t.Fatalf("库存应扣减 2, 实际: %d", product.Stock)
	}
}

func TestVerifyPayment_BadSignature(t *testing.T) {
	svc, orderRepo, _ := seedPaymentFixture(t)
	ctx := context.Background()

	req := &dto.VerifyPaymentReq{
		RazorpayOrderID:   "rzp_test_50",
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: "deadbeef",
	}
	if err := svc.VerifyPayment(ctx, req); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 ErrInvalidCredentials, 实际: %v", err)
	}

	order, _ := orderRepo.GetByIDWithItems(ctx, 50)
	if order.IsPaid() {
		t.Fatalf("验签失败不应落支付标记")
	}
}

func TestVerifyPayment_UnknownGatewayOrder(t *testing.T) {
	svc, _, _ := seedPaymentFixture(t)
	ctx := context.Background()

	req := &dto.VerifyPaymentReq{
		RazorpayOrderID:   "rzp_unknown",
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: signPayment("secret_test", "rzp_unknown", "pay_test_1"),
	}
	if err := svc.VerifyPayment(ctx, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, 实际: %v", err)
	}
}
