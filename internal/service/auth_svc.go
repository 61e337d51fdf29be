package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"vividhands_dev_v1_202601/internal/api/dto"
	"vividhands_dev_v1_202601/internal/middleware"
	"vividhands_dev_v1_202601/internal/model"
	"vividhands_dev_v1_202601/internal/repository"
)

// ==================== AuthService 认证服务 ====================

// AuthService 注册与登录
type AuthService struct {
	userRepo    repository.UserRepository
	artisanRepo repository.ArtisanRepository
	storage     StorageProvider
}

// NewAuthService 创建认证服务
func NewAuthService(
	userRepo repository.UserRepository,
	artisanRepo repository.ArtisanRepository,
	storage StorageProvider,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		artisanRepo: artisanRepo,
		storage:     storage,
	}
}

// ==================== 注册 ====================

// RegisterUser 买家注册
func (s *AuthService) RegisterUser(ctx context.Context, req *dto.RegisterUserReq) (*model.User, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
		Mobile:   req.Mobile,
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterArtisan 手工艺人注册，证书文件先落存储再建档
func (s *AuthService) RegisterArtisan(ctx context.Context, req *dto.RegisterArtisanReq, certificate []byte, certFilename string) (*model.Artisan, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	certificatePath := ""
	if len(certificate) > 0 {
		url, err := s.storage.Upload(ctx, certificate, certFilename, "application/octet-stream")
		if err != nil {
			return nil, err
		}
		certificatePath = url
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	artisan := &model.Artisan{
		Email:           req.Email,
		Password:        string(hashed),
		Name:            req.Name,
		Role:            model.RoleArtisan,
		Category:        req.Category,
		Experience:      req.Experience,
		Mobile:          req.Mobile,
		Location:        req.Location,
		MaterialsUsed:   req.MaterialsUsed,
		CertificatePath: certificatePath,
	}
	if err := s.artisanRepo.Create(ctx, artisan); err != nil {
		return nil, err
	}
	return artisan, nil
}

// checkEmailFree 跨表邮箱占用检查
// 历史数据里同一邮箱可能同时存在于两张表（卖家优先的登录次序因此保留），
// 新注册不允许再制造这种歧义
func (s *AuthService) checkEmailFree(ctx context.Context, email string) error {
	if exists, err := s.artisanRepo.ExistsByEmail(ctx, email); err != nil {
		return err
	} else if exists {
		return ErrEmailExists
	}
	if exists, err := s.userRepo.ExistsByEmail(ctx, email); err != nil {
		return err
	} else if exists {
		return ErrEmailExists
	}
	return nil
}

// ==================== 登录 ====================

// Login 合并登录入口
// 先查卖家表再查买家表，同邮箱时卖家优先（既有行为，勿改次序）
func (s *AuthService) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	artisan, err := s.artisanRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if artisan != nil {
		if bcrypt.CompareHashAndPassword([]byte(artisan.Password), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		token, err := middleware.GenerateToken(artisan.Email, artisan.ID, model.RoleArtisan)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResp{
			Token:     token,
			Role:      model.RoleArtisan,
			Email:     artisan.Email,
			ArtisanID: artisan.ID,
		}, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.Email, 0, model.RoleUser)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResp{
		Token:  token,
		Role:   model.RoleUser,
		Email:  user.Email,
		UserID: user.ID,
	}, nil
}
