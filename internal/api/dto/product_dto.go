package dto

import "time"

// ==================== 请求 ====================

// ProductReq 商品新增/更新请求（multipart 表单，图片文件单独取）
type ProductReq struct {
	Name         string  `form:"name" binding:"required"`
	Description  string  `form:"description"`
	Category     string  `form:"category"`
	Price        float64 `form:"price" binding:"required,gt=0"`
	Stock        int     `form:"stock" binding:"gte=0"`
	Materials    string  `form:"materials"`
	EthicalScore int     `form:"ethicalScore"`
}

// CreateReviewReq 新增评价请求
type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ==================== 响应 ====================

// ProductResp 商品响应
type ProductResp struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Price        float64            `json:"price"`
	Stock        int                `json:"stock"`
	Materials    string             `json:"materials"`
	EthicalScore int                `json:"ethical_score"`
	ArtisanID    int64              `json:"artisan_id"`
	ArtisanName  string             `json:"artisan_name,omitempty"`
	Images       []ProductImageResp `json:"images"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ProductImageResp 商品图片响应
type ProductImageResp struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Rank int    `json:"rank"`
}

// ReviewResp 评价响应
type ReviewResp struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
