package model

import (
	"time"
)

// ==================== Artisan 手工艺人 ====================

// Artisan 手工艺人（卖家）账号
// 与 User 分表存储，邮箱在两张表内各自唯一（跨表唯一性在注册时校验）
type Artisan struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:255" json:"name"`
	Role     string `gorm:"size:32;default:ROLE_ARTISAN" json:"role"`

	// 资质信息
	Category        string `gorm:"size:128" json:"category"`
	Experience      int    `gorm:"default:0" json:"experience"`
	Mobile          string `gorm:"size:32" json:"mobile"`
	Location        string `gorm:"size:255" json:"location"`
	MaterialsUsed   string `gorm:"size:500" json:"materials_used"`
	CertificatePath string `gorm:"size:500" json:"certificate_path"`

	// 审计字段
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (*Artisan) TableName() string {
	return "artisans"
}
