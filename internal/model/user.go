package model

import (
	"time"
)

// ==================== 角色常量 ====================

// Role 账号角色
const (
	RoleUser    = "ROLE_USER"    // 买家
	RoleArtisan = "ROLE_ARTISAN" // 手工艺人（卖家）
)

// ==================== User 买家 ====================

// User 买家账号
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:255" json:"name"`
	Mobile   string `gorm:"size:32" json:"mobile"`
	Role     string `gorm:"size:32;default:ROLE_USER" json:"role"`

	// 审计字段
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (*User) TableName() string {
	return "users"
}
