package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vividhands_dev_v1_202601/internal/controller"
	"vividhands_dev_v1_202601/internal/middleware"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
	"vividhands_dev_v1_202601/internal/router"
	"vividhands_dev_v1_202601/internal/service"
	"vividhands_dev_v1_202601/internal/task"
	"vividhands_dev_v1_202601/pkg/config"
	"vividhands_dev_v1_202601/pkg/database"
	"vividhands_dev_v1_202601/pkg/logger"
)

func main() {
	// 1. 加载配置与日志
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 2. 初始化数据库
	db := initDatabase(cfg)

	// 3. 初始化依赖
	deps := initDependencies(cfg, db)

	// 4. 启动定时任务
	if cfg.Sweep.Enabled {
		sweep := task.NewOrderSweepTask(
			deps.Repos.Order,
			time.Duration(cfg.Sweep.MaxAgeHours)*time.Hour,
		)
		sweep.Start()
		defer sweep.Stop()
	}

	// 5. 初始化路由并启动服务
	r := router.SetupRouter(deps.Controllers)
	startServer(cfg, r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User    repository.UserRepository
	Artisan repository.ArtisanRepository
	Product repository.ProductRepository
	Order   repository.OrderRepository
	Review  repository.ReviewRepository
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Order   *service.OrderService
	Product *service.ProductService
	Review  *service.ReviewService
	Payment *service.PaymentService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库并迁移表结构
func initDatabase(cfg *config.Config) *gorm.DB {
	return database.InitDB(cfg.Database.DSN,
		// Account
		&model.User{}, &model.Artisan{},
		// Product
		&model.Product{}, &model.ProductImage{},
		// Order
		&model.Order{}, &model.OrderItem{},
		// Review
		&model.Review{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB) *Dependencies {
	// -------- JWT 配置 --------
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL(),
		Issuer:         cfg.JWT.Issuer,
	})

	// -------- Repo 层 --------
	repos := &Repositories{
		User:    repository.NewUserRepository(db),
		Artisan: repository.NewArtisanRepository(db),
		Product: repository.NewProductRepository(db),
		Order:   repository.NewOrderRepository(db),
		Review:  repository.NewReviewRepository(db),
	}

	// -------- 存储 --------
	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		BasePath:  cfg.Storage.BasePath,
		LocalDir:  cfg.Storage.LocalDir,
		LocalURL:  cfg.Storage.LocalURL,
	})
	if err != nil {
		logger.L().Fatal("初始化存储失败", zap.Error(err))
	}

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(repos.User, repos.Artisan, storage),
		Order:   service.NewOrderService(repos.Order, repos.User, repos.Product),
		Product: service.NewProductService(repos.Product, repos.Artisan, storage),
		Review:  service.NewReviewService(repos.Review, repos.Product, repos.User),
		Payment: service.NewPaymentService(&service.PaymentConfig{
			KeyID:     cfg.Razorpay.KeyID,
			KeySecret: cfg.Razorpay.KeySecret,
		}, repos.Order, repos.User, repos.Product),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:    controller.NewAuthController(services.Auth),
		Order:   controller.NewOrderController(services.Order),
		Product: controller.NewProductController(services.Product, services.Review),
		Payment: controller.NewPaymentController(services.Payment),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// startServer 启动 HTTP 服务并处理优雅退出
func startServer(cfg *config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	go func() {
		logger.L().Info("HTTP 服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("HTTP 服务异常退出", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("收到退出信号，开始优雅关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("优雅关闭失败", zap.Error(err))
	}
}
