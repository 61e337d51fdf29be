package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/service"
)

// ==================== AuthController ====================

// AuthController 注册与登录接口
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 创建认证控制器
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterUser 买家注册
// @Summary 买家注册
// @Tags Auth
// @Accept json
// @Param body body dto.RegisterUserReq true "注册信息"
// @Success 201 {object} model.User
// @Router /api/auth/register [post]
func (ctrl *AuthController) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctrl.authService.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// RegisterArtisan 手工艺人注册（multipart，含证书文件）
// @Summary 手工艺人注册
// @Tags Auth
// @Accept multipart/form-data
// @Param certificate formData file false "资质证书"
// @Success 201 {object} model.Artisan
// @Router /api/auth/artisan/register [post]
func (ctrl *AuthController) RegisterArtisan(c *gin.Context) {
	var req dto.RegisterArtisanReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var certData []byte
	certName := ""
	if file, header, err := c.Request.FormFile("certificate"); err == nil {
		defer file.Close()
		certData, err = io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
			return
		}
		certName = header.Filename
	}

	artisan, err := ctrl.authService.RegisterArtisan(c.Request.Context(), &req, certData, certName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artisan)
}

// Login 合并登录（买家/卖家共用）
// @Summary 登录
// @Tags Auth
// @Accept json
// @Param body body dto.LoginReq true "登录信息"
// @Success 200 {object} dto.LoginResp
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// 登录失败一律 401，不泄露账号是否存在
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
