package service

import "errors"

// ==================== 服务层错误 ====================

// 鉴权与资源错误
// 每个拒绝原因都是独立的哨兵错误，由 controller 映射为明确的状态码，
// 不会像旧系统那样把所有失败折叠进同一个兜底分支
var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("not owner")
	ErrArtisanMismatch    = errors.New("artisan mismatch")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrOutOfStock         = errors.New("insufficient stock")
)
