package dto

// ==================== 注册 ====================

// RegisterUserReq 买家注册请求
type RegisterUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Mobile   string `json:"mobile"`
}

// RegisterArtisanReq 手工艺人注册请求（multipart 表单，证书文件单独取）
type RegisterArtisanReq struct {
	Email         string `form:"email" binding:"required,email"`
	Password      string `form:"password" binding:"required,min=6"`
	Name          string `form:"name" binding:"required"`
	Category      string `form:"category"`
	Experience    int    `form:"experience"`
	Mobile        string `form:"mobile"`
	Location      string `form:"location"`
	MaterialsUsed string `form:"materialsUsed"`
}

// ==================== 登录 ====================

// LoginReq 登录请求（买家与卖家共用入口）
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResp 登录响应
type LoginResp struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	ArtisanID int64  `json:"artisan_id,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`
}
