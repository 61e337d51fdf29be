package service

import (
	"context"
	"errors"
	"testing"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

func seedProductFixture(t *testing.T) (*ProductService, repository.ProductRepository) {
	t.Helper()
	db := setupTestDB(t)

	artisans := []model.Artisan{
		{ID: 3, Email: "craft3@x.com", Password: "x", Name: "Ravi", Role: model.RoleArtisan},
		{ID: 4, Email: "craft4@x.com", Password: "x", Name: "Sita", Role: model.RoleArtisan},
	}
	if err := db.Create(&artisans).Error; err != nil {
		t.Fatalf("写入卖家失败: %v", err)
	}

	product := model.Product{
		ID: 10, ArtisanID: 3, Name: "Clay Pot",
		PriceAmount: 2500, Stock: 5, Category: "pottery",
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("写入商品失败: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	svc := NewProductService(productRepo, repository.NewArtisanRepository(db), &fakeStorage{})
	return svc, productRepo
}

// ==================== 公开读 ====================

func TestProductPublicRead(t *testing.T) {
	svc, _ := seedProductFixture(t)
	ctx := context.Background()

	products, err := svc.ListAll(ctx)
	if err != nil || len(products) != 1 {
		t.Fatalf("公开列表异常: %v %+v", err, products)
	}

	product, err := svc.GetByID(ctx, 10)
	if err != nil {
		t.Fatalf("公开详情异常: %v", err)
	}
	if product.Artisan.Name != "Ravi" {
		t.Fatalf("卖家信息未预加载: %+v", product.Artisan)
	}

	if _, err := svc.GetByID(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, 实际: %v", err)
	}
}

// ==================== 卖家写操作 ====================

func TestAddProduct_SetsOwnerFromToken(t *testing.T) {
	svc, _ := seedProductFixture(t)
	ctx := context.Background()

	req := &dto.ProductReq{Name: "Brass Lamp", Price: 12.5, Stock: 3}
	images := []UploadedImage{{Data: []byte("img"), Filename: "lamp.jpg"}}

	product, err := svc.AddProduct(ctx, "craft4@x.com", req, images)
	if err != nil {
		t.Fatalf("新增商品失败: %v", err)
	}
	if product.ArtisanID != 4 {
		t.Fatalf("归属方应由 Token 身份写入, 实际: %d", product.ArtisanID)
	}
	if product.PriceAmount != 1250 {
		t.Fatalf("价格应按分存储, 实际: %d", product.PriceAmount)
	}
	if len(product.Images) != 1 {
		t.Fatalf("图片未入库: %+v", product.Images)
	}

	// 卖家账号不存在
	if _, err := svc.AddProduct(ctx, "ghost@x.com", req, nil); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("期望 ErrIdentityNotFound, 实际: %v", err)
	}
}

func TestUpdateProduct_OwnerOnly(t *testing.T) {
	svc, _ := seedProductFixture(t)
	ctx := context.Background()

	req := &dto.ProductReq{Name: "Clay Pot v2", Price: 30, Stock: 8}

	// 归属卖家可改
	product, err := svc.UpdateProduct(ctx, "craft3@x.com", 10, req, nil)
	if err != nil {
		t.Fatalf("归属卖家更新失败: %v", err)
	}
	if product.Name != "Clay Pot v2" || product.PriceAmount != 3000 {
		t.Fatalf("更新未生效: %+v", product)
	}

	// 非归属卖家拒绝
	if _, err := svc.UpdateProduct(ctx, "craft4@x.com", 10, req, nil); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("期望 ErrNotOwner, 实际: %v", err)
	}

	// 商品不存在
	if _, err := svc.UpdateProduct(ctx, "craft3@x.com", 404, req, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound, 实际: %v", err)
	}
}

func TestDeleteProduct_OwnerOnly(t *testing.T) {
	svc, productRepo := seedProductFixture(t)
	ctx := context.Background()

	// 卖家 4 的 Token 删卖家 3 的商品：拒绝且商品仍在
	if err := svc.DeleteProduct(ctx, "craft4@x.com", 10); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("期望 ErrNotOwner, 实际: %v", err)
	}
	if p, _ := productRepo.GetByID(ctx, 10); p == nil {
		t.Fatalf("被拒绝的删除不应生效")
	}

	// 归属卖家删除成功
	if err := svc.DeleteProduct(ctx, "craft3@x.com", 10); err != nil {
		t.Fatalf("归属卖家删除失败: %v", err)
	}
	if p, _ := productRepo.GetByID(ctx, 10); p != nil {
		t.Fatalf("商品应已删除")
	}
}

func TestListByArtisan(t *testing.T) {
	svc, _ := seedProductFixture(t)
	ctx := context.Background()

	products, err := svc.ListByArtisan(ctx, "craft3@x.com")
	if err != nil || len(products) != 1 {
		t.Fatalf("卖家商品列表异常: %v %+v", err, products)
	}

	empty, err := svc.ListByArtisan(ctx, "craft4@x.com")
	if err != nil || len(empty) != 0 {
		t.Fatalf("无商品卖家应返回空列表: %v %+v", err, empty)
	}
}
