package model

import (
	"time"
)

// ==================== Product 商品 ====================

// Product 商品
// 归属关系 ArtisanID 创建后不可变更，所有写操作都要先过所有权校验
type Product struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtisanID int64 `gorm:"index;not null" json:"artisan_id"`

	// 描述信息
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:128;index" json:"category"`
	Materials   string `gorm:"size:500" json:"materials"`

	// 价格（分为单位存储）与库存
	PriceAmount  int64  `json:"price_amount"`
	Currency     string `gorm:"size:10;default:INR" json:"currency"`
	Stock        int    `gorm:"default:0" json:"stock"`
	EthicalScore int    `gorm:"default:0" json:"ethical_score"`

	// 审计字段
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Artisan Artisan        `gorm:"foreignKey:ArtisanID" json:"artisan"`
	Images  []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
}

func (*Product) TableName() string {
	return "products"
}

// GetPrice 获取单价（元）
func (p *Product) GetPrice() float64 {
	return float64(p.PriceAmount) / 100
}

// ==================== ProductImage 商品图片 ====================

// ProductImage 商品图片
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"size:500" json:"url"`
	Rank      int    `gorm:"default:1" json:"rank"`

	CreatedAt time.Time `json:"created_at"`
}

func (*ProductImage) TableName() string {
	return "product_images"
}
