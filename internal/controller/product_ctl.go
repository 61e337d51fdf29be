package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/middleware"
	"vividhands_dev_v1_202601/internal/service"
)

// ==================== ProductController ====================

// ProductController 商品与评价接口
type ProductController struct {
	productService *service.ProductService
	reviewService  *service.ReviewService
}

// NewProductController 创建商品控制器
func NewProductController(productService *service.ProductService, reviewService *service.ReviewService) *ProductController {
	return &ProductController{
		productService: productService,
		reviewService:  reviewService,
	}
}

// ==================== 公开读 ====================

// GetAllProducts 商品列表
// @Summary 全部商品列表
// @Tags Product
// @Success 200 {array} dto.ProductResp
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.productService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProductResp, 0, len(products))
	for i := range products {
		resp = append(resp, ctrl.productService.ToProductResp(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetProductByID 商品详情
// @Summary 商品详情
// @Tags Product
// @Param productId path int true "商品ID"
// @Success 200 {object} dto.ProductResp
// @Router /api/products/{productId} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := ctrl.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctrl.productService.ToProductResp(product))
}

// GetProductReviews 商品评价列表
// @Summary 商品评价列表
// @Tags Product
// @Param productId path int true "商品ID"
// @Success 200 {array} dto.ReviewResp
// @Router /api/products/{productId}/reviews [get]
func (ctrl *ProductController) GetProductReviews(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	reviews, err := ctrl.reviewService.ListProductReviews(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview 买家新增评价
// @Summary 新增商品评价
// @Tags Product
// @Accept json
// @Param productId path int true "商品ID"
// @Param body body dto.CreateReviewReq true "评价内容"
// @Success 201 {object} model.Review
// @Router /api/products/{productId}/reviews [post]
func (ctrl *ProductController) CreateReview(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req dto.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := ctrl.reviewService.CreateReview(c.Request.Context(), middleware.GetEmail(c), productID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ==================== 卖家侧 ====================

// GetMyProducts 卖家自己的商品
// @Summary 卖家商品列表
// @Tags Product
// @Success 200 {array} dto.ProductResp
// @Router /api/products/my-products [get]
func (ctrl *ProductController) GetMyProducts(c *gin.Context) {
	products, err := ctrl.productService.ListByArtisan(c.Request.Context(), middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProductResp, 0, len(products))
	for i := range products {
		resp = append(resp, ctrl.productService.ToProductResp(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddProduct 新增商品
// @Summary 新增商品
// @Tags Product
// @Accept multipart/form-data
// @Param images formData file false "商品图片"
// @Success 200 {object} dto.ProductResp
// @Router /api/products/add [post]
func (ctrl *ProductController) AddProduct(c *gin.Context) {
	var req dto.ProductReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	images, err := readFormImages(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
		return
	}

	product, err := ctrl.productService.AddProduct(c.Request.Context(), middleware.GetEmail(c), &req, images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctrl.productService.ToProductResp(product))
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Product
// @Accept multipart/form-data
// @Param productId path int true "商品ID"
// @Success 200 {object} dto.ProductResp
// @Router /api/products/update/{productId} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req dto.ProductReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	images, err := readFormImages(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
		return
	}

	product, err := ctrl.productService.UpdateProduct(
		c.Request.Context(), middleware.GetEmail(c), productID, &req, images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctrl.productService.ToProductResp(product))
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Tags Product
// @Param productId path int true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/delete/{productId} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), middleware.GetEmail(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// ==================== 辅助 ====================

// readFormImages 读取 multipart 表单里的全部图片文件
func readFormImages(c *gin.Context) ([]service.UploadedImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// 无表单文件也是合法的
		return nil, nil
	}

	var images []service.UploadedImage
	for _, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, service.UploadedImage{
			Data:     data,
			Filename: header.Filename,
		})
	}
	return images, nil
}
