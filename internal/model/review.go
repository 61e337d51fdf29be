package model

import (
	"time"
)

// ==================== Review 商品评价 ====================

// Review 商品评价，读取不做所有权校验（公开）
type Review struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64 `gorm:"index;not null" json:"product_id"`
	UserID    int64 `gorm:"index" json:"user_id"`

	Rating  int    `gorm:"default:5" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	// 关联
	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (*Review) TableName() string {
	return "reviews"
}
