package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vividhands_dev_v1_202601/internal/service"
	"vividhands_dev_v1_202601/pkg/logger"
)

// ==================== 错误映射 ====================

// respondError 把服务层哨兵错误映射为明确状态码
// 404 资源不存在 / 403 归属不符 / 401 凭证问题 / 409 邮箱占用 / 其余 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrArtisanMismatch),
		errors.Is(err, service.ErrIdentityNotFound):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.L().Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
	}
}
