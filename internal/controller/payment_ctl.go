package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/middleware"
	"vividhands_dev_v1_202601/internal/service"
)

// ==================== PaymentController ====================

// PaymentController 支付接口
type PaymentController struct {
	paymentService *service.PaymentService
}

// NewPaymentController 创建支付控制器
func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePayment 为订单发起支付
// @Summary 发起支付
// @Tags Payment
// @Param orderId path int true "订单ID"
// @Success 200 {object} dto.CreatePaymentResp
// @Router /api/payment/create/{orderId} [post]
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	resp, err := ctrl.paymentService.CreateGatewayOrder(c.Request.Context(), orderID, middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyPayment 支付验签
// @Summary 支付验签
// @Tags Payment
// @Accept json
// @Param body body dto.VerifyPaymentReq true "验签信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/payment/verify [post]
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.paymentService.VerifyPayment(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paid"})
}
