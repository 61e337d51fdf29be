package service

import (
	"context"
	"time"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
// 所有读写都先从 Token 解析身份，再按归属关系放行或拒绝
type OrderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// ==================== 买家侧 ====================

// ListUserOrders 买家订单列表
// 路径里的 userId 必须与 Token 邮箱指向同一账号，只返回已支付订单
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64, tokenEmail string) ([]model.Order, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}
	if user.Email != tokenEmail {
		return nil, ErrNotOwner
	}

	return s.orderRepo.ListPaidByUser(ctx, user.ID)
}

// GetOrderWithItems 买家订单详情（含订单项）
func (s *OrderService) GetOrderWithItems(ctx context.Context, orderID int64, tokenEmail string) (*model.Order, error) {
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
	return order, nil
}

// ListOrdersByDateRange 按下单时间区间查询，查询本身已按身份过滤
func (s *OrderService) ListOrdersByDateRange(ctx context.Context, start, end time.Time, tokenEmail string) ([]model.Order, error) {
	user, err := s.userRepo.GetByEmail(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}

	return s.orderRepo.ListByDateRangeAndUser(ctx, start, end, user.ID)
}

// PlaceOrder 买家下单，价格取商品当前价快照
func (s *OrderService) PlaceOrder(ctx context.Context, tokenEmail string, req *dto.PlaceOrderReq) (*model.Order, error) {
	user, err := s.userRepo.GetByEmail(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}

	order := &model.Order{
		UserID:          user.ID,
		Status:          model.OrderStatusPending,
		Currency:        "INR",
		ShippingAddress: req.ShippingAddress,
		OrderDate:       time.Now(),
	}

	var total int64
	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrNotFound
		}
		if product.Stock < item.Quantity {
			return nil, ErrOutOfStock
		}

		order.Items = append(order.Items, model.OrderItem{
			ProductID:   product.ID,
			Quantity:    item.Quantity,
			PriceAmount: product.PriceAmount,
		})
		total += product.PriceAmount * int64(item.Quantity)
	}
	order.TotalAmount = total

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ==================== 卖家侧 ====================

// ListArtisanOrders 卖家订单列表
// Token 内的卖家 ID 必须与路径一致，查询按归属链过滤且仅含已支付订单
func (s *OrderService) ListArtisanOrders(ctx context.Context, pathArtisanID, tokenArtisanID int64) ([]model.Order, error) {
	if pathArtisanID != tokenArtisanID {
		return nil, ErrArtisanMismatch
	}
	return s.orderRepo.ListPaidByArtisan(ctx, pathArtisanID)
}

// GetArtisanOrderDetail 卖家订单详情
// 路径级 ID 比对之后，取回订单还要再核一遍订单项归属——
// 查询层将来出了串号 bug 也不会把别家订单放出去
func (s *OrderService) GetArtisanOrderDetail(ctx context.Context, pathArtisanID, orderID, tokenArtisanID int64) (*dto.ArtisanOrderDetailResp, error) {
	if pathArtisanID != tokenArtisanID {
		return nil, ErrArtisanMismatch
	}

	order, err := s.orderRepo.GetByIDWithItemsAndProductImages(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		// 对非归属方不暴露订单是否存在
		return nil, ErrArtisanMismatch
	}

	if err := CheckOrderArtisan(pathArtisanID, order); err != nil {
		return nil, err
	}

	return s.toArtisanOrderDetail(pathArtisanID, order), nil
}

// toArtisanOrderDetail 裁剪为卖家视角：只保留归属该卖家的订单项
func (s *OrderService) toArtisanOrderDetail(artisanID int64, order *model.Order) *dto.ArtisanOrderDetailResp {
	resp := &dto.ArtisanOrderDetailResp{
		OrderID:    order.ID,
		OrderDate:  order.OrderDate,
		Status:     order.Status,
		BuyerName:  order.User.Name,
		BuyerEmail: order.User.Email,
		Address:    order.ShippingAddress,
	}

	for _, item := range order.Items {
		if item.Product.ArtisanID != artisanID {
			continue
		}
		urls := make([]string, 0, len(item.Product.Images))
		for _, img := range item.Product.Images {
			urls = append(urls, img.URL)
		}
		resp.Items = append(resp.Items, dto.ArtisanOrderItemResp{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.GetPrice(),
			ImageURLs:   urls,
		})
	}
	return resp
}
