package service

import (
	"context"
	"math"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务
// 公开读不做校验；增删改一律先解析卖家身份再校验归属
type ProductService struct {
	productRepo repository.ProductRepository
	artisanRepo repository.ArtisanRepository
	storage     StorageProvider
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	artisanRepo repository.ArtisanRepository,
	storage StorageProvider,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		artisanRepo: artisanRepo,
		storage:     storage,
	}
}

// ==================== 公开读 ====================

// ListAll 全部商品
func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ListAll(ctx)
}

// GetByID 商品详情
func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByIDWithImages(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ==================== 卖家侧 ====================

// UploadedImage 待上传图片
type UploadedImage struct {
	Data     []byte
	Filename string
}

// ListByArtisan 卖家自己的商品列表
func (s *ProductService) ListByArtisan(ctx context.Context, tokenEmail string) ([]model.Product, error) {
	artisan, err := s.resolveArtisan(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListByArtisan(ctx, artisan.ID)
}

// AddProduct 新增商品，归属方由服务端按 Token 身份写入
func (s *ProductService) AddProduct(ctx context.Context, tokenEmail string, req *dto.ProductReq, images []UploadedImage) (*model.Product, error) {
	artisan, err := s.resolveArtisan(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		ArtisanID: artisan.ID,
		Currency:  "INR",
	}
	copyReqToProduct(req, product)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if err := s.saveImages(ctx, product, images); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, product.ID)
}

// UpdateProduct 更新商品，仅限归属卖家
func (s *ProductService) UpdateProduct(ctx context.Context, tokenEmail string, productID int64, req *dto.ProductReq, images []UploadedImage) (*model.Product, error) {
	product, err := s.getOwnedProduct(ctx, tokenEmail, productID)
	if err != nil {
		return nil, err
	}

	copyReqToProduct(req, product)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	// 有新图时整组替换
	if len(images) > 0 {
		if err := s.productRepo.DeleteImagesByProductID(ctx, product.ID); err != nil {
			return nil, err
		}
		if err := s.saveImages(ctx, product, images); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, product.ID)
}

// DeleteProduct 删除商品，仅限归属卖家
func (s *ProductService) DeleteProduct(ctx context.Context, tokenEmail string, productID int64) error {
	product, err := s.getOwnedProduct(ctx, tokenEmail, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.DeleteImagesByProductID(ctx, product.ID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product.ID)
}

// ==================== 内部辅助 ====================

// getOwnedProduct 取商品并校验归属
func (s *ProductService) getOwnedProduct(ctx context.Context, tokenEmail string, productID int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	artisan, err := s.resolveArtisan(ctx, tokenEmail)
	if err != nil {
		return nil, err
	}

	if err := CheckProductOwner(artisan.ID, product); err != nil {
		return nil, err
	}
	return product, nil
}

// resolveArtisan 按 Token 邮箱解析卖家账号
func (s *ProductService) resolveArtisan(ctx context.Context, email string) (*model.Artisan, error) {
	artisan, err := s.artisanRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if artisan == nil {
		return nil, ErrIdentityNotFound
	}
	return artisan, nil
}

// saveImages 上传图片并建关联记录
func (s *ProductService) saveImages(ctx context.Context, product *model.Product, images []UploadedImage) error {
	for i, img := range images {
		url, err := s.storage.Upload(ctx, img.Data, img.Filename, "image/jpeg")
		if err != nil {
			return err
		}
		if err := s.productRepo.CreateImage(ctx, &model.ProductImage{
			ProductID: product.ID,
			URL:       url,
			Rank:      i + 1,
		}); err != nil {
			return err
		}
	}
	return nil
}

// copyReqToProduct 请求字段覆盖到商品实体（归属字段不在其列）
func copyReqToProduct(req *dto.ProductReq, product *model.Product) {
	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.PriceAmount = int64(math.Round(req.Price * 100))
	product.Stock = req.Stock
	product.Materials = req.Materials
	product.EthicalScore = req.EthicalScore
}

// ==================== 响应转换 ====================

// ToProductResp 转换为响应结构
func (s *ProductService) ToProductResp(p *model.Product) dto.ProductResp {
	images := make([]dto.ProductImageResp, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, dto.ProductImageResp{
			ID:   img.ID,
			URL:  img.URL,
			Rank: img.Rank,
		})
	}
	return dto.ProductResp{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.GetPrice(),
		Stock:        p.Stock,
		Materials:    p.Materials,
		EthicalScore: p.EthicalScore,
		ArtisanID:    p.ArtisanID,
		ArtisanName:  p.Artisan.Name,
		Images:       images,
		CreatedAt:    p.CreatedAt,
	}
}
