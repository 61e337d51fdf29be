package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

// seedOrderFixture 造两个买家、两个卖家、各自商品与订单
func seedOrderFixture(t *testing.T) (*OrderService, repository.OrderRepository) {
	t.Helper()
	db := setupTestDB(t)

	users := []model.User{
		{ID: 7, Email: "a@x.com", Password: "x", Name: "Asha", Role: model.RoleUser},
		{ID: 8, Email: "b@x.com", Password: "x", Name: "Bina", Role: model.RoleUser},
	}
	artisans := []model.Artisan{
		{ID: 3, Email: "craft3@x.com", Password: "x", Name: "Ravi", Role: model.RoleArtisan},
		{ID: 5, Email: "craft5@x.com", Password: "x", Name: "Mira", Role: model.RoleArtisan},
	}
	products := []model.Product{
		{ID: 10, ArtisanID: 3, Name: "Clay Pot", PriceAmount: 2500, Stock: 5},
		{ID: 11, ArtisanID: 5, Name: "Woven Basket", PriceAmount: 4000, Stock: 5},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("写入买家失败: %v", err)
	}
	if err := db.Create(&artisans).Error; err != nil {
		t.Fatalf("写入卖家失败: %v", err)
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("写入商品失败: %v", err)
	}

	orders := []model.Order{
		// 买家 7：一单已支付（含卖家 3 的商品），一单未支付
		{
			ID: 50, UserID: 7, Status: model.OrderStatusPaid,
			RazorpayOrderID: "rzp_50", RazorpayPaymentID: strPtr("pay_50"),
			OrderDate: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
			Items:     []model.OrderItem{{ProductID: 10, Quantity: 1, PriceAmount: 2500}},
		},
		{
			ID: 51, UserID: 7, Status: model.OrderStatusPending,
			OrderDate: time.Date(2026, 1, 12, 12, 0, 0, 0, time.UTC),
			Items:     []model.OrderItem{{ProductID: 10, Quantity: 2, PriceAmount: 2500}},
		},
		// 订单 55：买家 8，唯一订单项归属卖家 5，已支付
		{
			ID: 55, UserID: 8, Status: model.OrderStatusPaid,
			RazorpayOrderID: "rzp_55", RazorpayPaymentID: strPtr("pay_55"),
			OrderDate: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
			Items:     []model.OrderItem{{ProductID: 11, Quantity: 1, PriceAmount: 4000}},
		},
	}
	if err := db.Create(&orders).Error; err != nil {
		t.Fatalf("写入订单失败: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	svc := NewOrderService(orderRepo, repository.NewUserRepository(db), repository.NewProductRepository(db))
	return svc, orderRepo
}

// ==================== 买家侧 ====================

func TestListUserOrders_OnlyPaidAndOwned(t *testing.T) {
	svc, _ := seedOrderFixture(t)
	ctx := context.Background()

	orders, err := svc.ListUserOrders(ctx, 7, "a@x.com")
	if err != nil {
		t.Fatalf("本人查询应成功: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 50 {
		t.Fatalf("应只返回已支付订单 50, 实际: %+v", orders)
	}

	// Token 邮箱与路径买家不一致
	if _, err := svc.ListUserOrders(ctx, 7, "b@x.com"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("期望 ErrNotOwner, 实际: %v", err)
	}

	// 买家不存在
	if _, err := svc.ListUserOrders(ctx, 999, "a@x.com"); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("期望 ErrIdentityNotFound, 实际: %v", err)
	}
}

func TestGetOrderWithItems(t *testing.T) {
	svc, _ := seedOrderFixture(t)
	ctx := context.Background()

	order, err := svc.GetOrderWithItems(ctx, 50, "a@x.com")
	if err != nil {
		t.Fatalf("归属买家应放行: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != 10 {
		t.Fatalf("订单项未正确预加载: %+v", order.Items)
	}

	// 幂等：同 Token 同订单重复读取结果一致
	again, err := svc.GetOrderWithItems(ctx, 50, "a@x.com")
	if err != nil || again.ID != order.ID || len(again.Items) != len(order.Items) {
		t.Fatalf("重复读取结果不一致: %v %+v", err, again)
	}

	// 非归属买家
	if _, err := svc.GetOrderWithItems(ctx, 50, "b@x.com"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("期望 ErrNotOwner, 实际: %v", err)
	}

	// 订单不存在
	if _, err := svc.GetOrderWithItems(ctx, 404, "a@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, 实际: %v", err)
	}
}

func TestListOrdersByDateRange(t *testing.T) {
	svc, _ := seedOrderFixture(t)
	ctx := context.Background()

	start := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	orders, err := svc.ListOrdersByDateRange(ctx, start, end, "a@x.com")
	if err != nil {
		t.Fatalf("区间查询失败: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 50 {
		t.Fatalf("区间内应只有订单 50, 实际: %+v", orders)
	}

	if _, err := svc.ListOrdersByDateRange(ctx, start, end, "nobody@x.com"); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("期望 ErrIdentityNotFound, 实际: %v", err)
	}
}

func TestPlaceOrder(t *testing.T) {
	svc, orderRepo := seedOrderFixture(t)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, "a@x.com", placeOrderReq(10, 2))
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	if order.TotalAmount != 5000 {
		t.Fatalf("总金额应为价格快照之和, 实际: %d", order.TotalAmount)
	}
	if order.IsPaid() {
		t.Fatalf("新订单不应带支付完成标记")
	}

	// 新订单未支付，不出现在买家列表
	paid, err := orderRepo.ListPaidByUser(ctx, 7)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	for _, o := range paid {
		if o.ID == order.ID {
			t.Fatalf("未支付订单不应出现在列表")
		}
	}

	// 库存不足
	if _, err := svc.PlaceOrder(ctx, "a@x.com", placeOrderReq(10, 99)); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("期望 ErrOutOfStock, 实际: %v", err)
	}
}

// ==================== 卖家侧 ====================

func TestListArtisanOrders(t *testing.T) {
	svc, _ := seedOrderFixture(t)
	ctx := context.Background()

	orders, err := svc.ListArtisanOrders(ctx, 3, 3)
	if err != nil {
		t.Fatalf("卖家查询失败: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 50 {
		t.Fatalf("卖家 3 应只见订单 50, 实际: %+v", orders)
	}

	// Token 卖家 ID 与路径不一致：结构合法的真实 Token 也要拒绝
	if _, err := svc.ListArtisanOrders(ctx, 3, 5); !errors.Is(err, ErrArtisanMismatch) {
		t.Fatalf("期望 ErrArtisanMismatch, 实际: %v", err)
	}
}

func TestGetArtisanOrderDetail_DoubleCheck(t *testing.T) {
	svc, _ := seedOrderFixture(t)
	ctx := context.Background()

	// 卖家 3 查订单 55：路径级比对通过（3==3），
	// 但订单 55 唯一订单项归属卖家 5，订单项级复核必须拒绝
	if _, err := svc.GetArtisanOrderDetail(ctx, 3, 55, 3); !errors.Is(err, ErrArtisanMismatch) {
		t.Fatalf("订单项级复核应拒绝, 实际: %v", err)
	}

	// 卖家 5 查自己的订单 55
	detail, err := svc.GetArtisanOrderDetail(ctx, 5, 55, 5)
	if err != nil {
		t.Fatalf("归属卖家应放行: %v", err)
	}
	if detail.OrderID != 55 || len(detail.Items) != 1 || detail.Items[0].ProductID != 11 {
		t.Fatalf("详情裁剪不正确: %+v", detail)
	}
	if detail.BuyerEmail != "b@x.com" {
		t.Fatalf("买家信息缺失: %+v", detail)
	}

	// 订单不存在：同样按归属不符拒绝，不暴露存在性
	if _, err := svc.GetArtisanOrderDetail(ctx, 3, 404, 3); !errors.Is(err, ErrArtisanMismatch) {
		t.Fatalf("不存在订单应按归属不符拒绝, 实际: %v", err)
	}

	// 路径级比对不过直接短路
	if _, err := svc.GetArtisanOrderDetail(ctx, 5, 55, 3); !errors.Is(err, ErrArtisanMismatch) {
		t.Fatalf("路径级比对应拒绝, 实际: %v", err)
	}
}
