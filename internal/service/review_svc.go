package service

import (
	"context"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

// ==================== ReviewService 评价服务 ====================

// ReviewService 评价服务，读公开，写需买家身份
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewReviewService 创建评价服务
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// ListProductReviews 商品评价列表（公开）
func (s *ReviewService) ListProductReviews(ctx context.Context, productID int64) ([]dto.ReviewResp, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ReviewResp, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ReviewResp{
			ID:        r.ID,
			ProductID: r.ProductID,
			UserName:  r.User.Name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return resp, nil
}

// CreateReview 买家新增评价
func (s *ReviewService) CreateReview(ctx context.Context, tokenEmail string, productID int64, req *dto.CreateReviewReq) (*model.Review, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	user, err := s.userRepo.GetByEmail(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
