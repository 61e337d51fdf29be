package service

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/model"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{}, &model.Artisan{},
		&model.Product{}, &model.ProductImage{},
		&model.Order{}, &model.OrderItem{},
		&model.Review{},
	); err != nil {
		t.Fatalf("测试建表失败: %v", err)
	}
	return db
}

// fakeStorage 测试用存储桩
type fakeStorage struct {
	uploads int
}

func (f *fakeStorage) Upload(_ context.Context, _ []byte, filename string, _ string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://cdn.test/%d-%s", f.uploads, filename), nil
}

func (f *fakeStorage) Delete(_ context.Context, _ string) error {
	return nil
}

func strPtr(s string) *string {
	return &s
}

func placeOrderReq(productID int64, quantity int) *dto.PlaceOrderReq {
	return &dto.PlaceOrderReq{
		Items: []dto.PlaceOrderItem{{ProductID: productID, Quantity: quantity}},
	}
}
