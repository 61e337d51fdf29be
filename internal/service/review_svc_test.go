package service

import (
	"context"
	"errors"
	"testing"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

func seedReviewFixture(t *testing.T) *ReviewService {
	t.Helper()
	db := setupTestDB(t)

	if err := db.Create(&model.User{ID: 7, Email: "a@x.com", Password: "x", Name: "Asha"}).Error; err != nil {
		t.Fatalf("写入买家失败: %v", err)
	}
	if err := db.Create(&model.Product{ID: 10, ArtisanID: 3, Name: "Clay Pot", PriceAmount: 2500, Stock: 5}).Error; err != nil {
		t.Fatalf("写入商品失败: %v", err)
	}

	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewProductRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestCreateAndListReviews(t *testing.T) {
	svc := seedReviewFixture(t)
	ctx := context.Background()

	review, err := svc.CreateReview(ctx, "a@x.com", 10, &dto.CreateReviewReq{Rating: 5, Comment: "lovely"})
	if err != nil {
		t.Fatalf("新增评价失败: %v", err)
	}
	if review.UserID != 7 {
		t.Fatalf("评价人应由 Token 身份写入, 实际: %d", review.UserID)
	}

	reviews, err := svc.ListProductReviews(ctx, 10)
	if err != nil {
		t.Fatalf("评价列表失败: %v", err)
	}
	if len(reviews) != 1 || reviews[0].UserName != "Asha" || reviews[0].Rating != 5 {
		t.Fatalf("评价列表不正确: %+v", reviews)
	}
}

func TestCreateReview_Failures(t *testing.T) {
	svc := seedReviewFixture(t)
	ctx := context.Background()

	req := &dto.CreateReviewReq{Rating: 4, Comment: "ok"}

	// 商品不存在
	if _, err := svc.CreateReview(ctx, "a@x.com", 404, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, 实际: %v", err)
	}
	// 买家账号不存在
	if _, err := svc.CreateReview(ctx, "ghost@x.com", 10, req); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("期望 ErrIdentityNotFound, 实际: %v", err)
	}
	// 评价列表对不存在商品同样 404
	if _, err := svc.ListProductReviews(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, 实际: %v", err)
	}
}
