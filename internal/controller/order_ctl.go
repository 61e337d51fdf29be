package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/middleware"
	"vividhands_dev_v1_202601/internal/service"
)

// ==================== OrderController ====================

// OrderController 订单接口
type OrderController struct {
	orderService *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// ==================== 买家侧 ====================

// GetUserOrders 买家订单列表（仅已支付）
// @Summary 买家订单列表
// @Tags Order
// @Param userId path int true "买家ID"
// @Success 200 {array} model.Order
// @Router /api/orders/user/{userId} [get]
func (ctrl *OrderController) GetUserOrders(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	orders, err := ctrl.orderService.ListUserOrders(c.Request.Context(), userID, middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderWithItems 买家订单详情
// @Summary 买家订单详情（含订单项）
// @Tags Order
// @Param orderId path int true "订单ID"
// @Success 200 {object} model.Order
// @Router /api/orders/{orderId} [get]
func (ctrl *OrderController) GetOrderWithItems(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := ctrl.orderService.GetOrderWithItems(c.Request.Context(), orderID, middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrdersByDateRange 按下单时间区间查询
// @Summary 按时间区间查询本人订单
// @Tags Order
// @Param start query string true "起始时间 ISO8601"
// @Param end query string true "结束时间 ISO8601"
// @Success 200 {array} model.Order
// @Router /api/orders/filter [get]
func (ctrl *OrderController) GetOrdersByDateRange(c *gin.Context) {
	start, err1 := parseISOTime(c.Query("start"))
	end, err2 := parseISOTime(c.Query("end"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	orders, err := ctrl.orderService.ListOrdersByDateRange(c.Request.Context(), start, end, middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// PlaceOrder 买家下单
// @Summary 买家下单
// @Tags Order
// @Accept json
// @Param body body dto.PlaceOrderReq true "下单信息"
// @Success 201 {object} model.Order
// @Router /api/orders/place [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ctrl.orderService.PlaceOrder(c.Request.Context(), middleware.GetEmail(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ==================== 卖家侧 ====================

// GetArtisanOrders 卖家订单列表
// @Summary 卖家订单列表
// @Tags Order
// @Param artisanId path int true "卖家ID"
// @Success 200 {array} model.Order
// @Router /api/orders/artisan/{artisanId}/orders [get]
func (ctrl *OrderController) GetArtisanOrders(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("artisanId"), 10, 64)
	if err != nil || artisanID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artisan id"})
		return
	}

	orders, err := ctrl.orderService.ListArtisanOrders(c.Request.Context(), artisanID, middleware.GetArtisanID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetArtisanOrderDetail 卖家订单详情
// @Summary 卖家订单详情
// @Tags Order
// @Param artisanId path int true "卖家ID"
// @Param orderId path int true "订单ID"
// @Success 200 {object} dto.ArtisanOrderDetailResp
// @Router /api/orders/artisan/{artisanId}/orders/{orderId} [get]
func (ctrl *OrderController) GetArtisanOrderDetail(c *gin.Context) {
	artisanID, err1 := strconv.ParseInt(c.Param("artisanId"), 10, 64)
	orderID, err2 := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err1 != nil || err2 != nil || artisanID <= 0 || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path parameters"})
		return
	}

	detail, err := ctrl.orderService.GetArtisanOrderDetail(
		c.Request.Context(), artisanID, orderID, middleware.GetArtisanID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ==================== 辅助 ====================

// parseISOTime 解析 ISO8601 时间，带时区或不带都接受
func parseISOTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
