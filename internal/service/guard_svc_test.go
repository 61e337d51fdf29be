package service

import (
	"errors"
	"testing"

	"vividhands_dev_v1_202601/internal/model"
)

// ==================== 订单-买家 ====================

func TestCheckOrderOwner(t *testing.T) {
	user := &model.User{ID: 7, Email: "a@x.com"}

	order := &model.Order{
		ID:     1,
		UserID: 7,
		User:   model.User{ID: 7, Email: "a@x.com"},
	}
	if err := CheckOrderOwner(user, order); err != nil {
		t.Fatalf("本人订单应放行: %v", err)
	}

	// ID 不符
	other := &model.Order{ID: 2, UserID: 8, User: model.User{ID: 8, Email: "a@x.com"}}
	if err := CheckOrderOwner(user, other); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("期望 ErrNotOwner, 实际: %v", err)
	}

	// ID 相同但邮箱不符（双重校验的第二道）
	mismatch := &model.Order{ID: 3, UserID: 7, User: model.User{ID: 7, Email: "b@x.com"}}
	if err := CheckOrderOwner(user, mismatch); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("邮箱不符应拒绝, 实际: %v", err)
	}
}

// ==================== 订单-卖家 ====================

func TestCheckOrderArtisan(t *testing.T) {
	order := &model.Order{
		Items: []model.OrderItem{
			{Product: model.Product{ArtisanID: 5}},
			{Product: model.Product{ArtisanID: 3}},
		},
	}

	if err := CheckOrderArtisan(3, order); err != nil {
		t.Fatalf("含归属订单项应放行: %v", err)
	}
	if err := CheckOrderArtisan(4, order); !errors.Is(err, ErrArtisanMismatch) {
		t.Fatalf("期望 ErrArtisanMismatch, 实际: %v", err)
	}

	// 空订单项一律拒绝
	empty := &model.Order{}
	if err := CheckOrderArtisan(3, empty); !errors.Is(err, ErrArtisanMismatch) {
		t.Fatalf("空订单项应拒绝, 实际: %v", err)
	}
}

// ==================== 商品-卖家 ====================

func TestCheckProductOwner(t *testing.T) {
	product := &model.Product{ID: 10, ArtisanID: 3}

	if err := CheckProductOwner(3, product); err != nil {
		t.Fatalf("归属卖家应放行: %v", err)
	}
	if err := CheckProductOwner(4, product); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("期望 ErrNotOwner, 实际: %v", err)
	}
}
