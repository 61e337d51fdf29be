package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vividhands_dev_v1_202601/internal/controller"
	"vividhands_dev_v1_202601/internal/middleware"
	"vividhands_dev_v1_202601/internal/model"

	_ "vividhands_dev_v1_202601/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Auth    *controller.AuthController
	Order   *controller.OrderController
	Product *controller.ProductController
	Payment *controller.PaymentController
}

// SetupRouter 创建引擎并注册所有路由
func SetupRouter(ctrls *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AccessLog(), middleware.Recovery())

	InitRoutes(r, ctrls)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctrls *Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. API 路由组
	api := r.Group("/api")
	{
		// auth 认证组（无需 Token）
		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrls.Auth.RegisterUser)
			auth.POST("/artisan/register", ctrls.Auth.RegisterArtisan)
			auth.POST("/login", ctrls.Auth.Login)
		}

		// orders 订单组（全部需要 Token）
		orders := api.Group("/orders", middleware.JWTAuth())
		{
			orders.GET("/user/:userId", ctrls.Order.GetUserOrders)
			orders.GET("/filter", ctrls.Order.GetOrdersByDateRange)
			orders.GET("/:orderId", ctrls.Order.GetOrderWithItems)
			orders.POST("/place", ctrls.Order.PlaceOrder)
			orders.GET("/artisan/:artisanId/orders", ctrls.Order.GetArtisanOrders)
			orders.GET("/artisan/:artisanId/orders/:orderId", ctrls.Order.GetArtisanOrderDetail)
		}

		// products 商品组（读公开，写需卖家身份）
		products := api.Group("/products")
		{
			products.GET("", ctrls.Product.GetAllProducts)
			products.GET("/:productId", ctrls.Product.GetProductByID)
			products.GET("/:productId/reviews", ctrls.Product.GetProductReviews)

			products.POST("/:productId/reviews", middleware.JWTAuth(), ctrls.Product.CreateReview)

			artisanOnly := products.Group("", middleware.JWTAuth(), middleware.RequireRole(model.RoleArtisan))
			{
				artisanOnly.GET("/my-products", ctrls.Product.GetMyProducts)
				artisanOnly.POST("/add", ctrls.Product.AddProduct)
				artisanOnly.PUT("/update/:productId", ctrls.Product.UpdateProduct)
				artisanOnly.DELETE("/delete/:productId", ctrls.Product.DeleteProduct)
			}
		}

		// payment 支付组
		payment := api.Group("/payment", middleware.JWTAuth())
		{
			payment.POST("/create/:orderId", ctrls.Payment.CreatePayment)
			payment.POST("/verify", ctrls.Payment.VerifyPayment)
		}
	}
}
