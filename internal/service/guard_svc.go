package service

import (
	"vividhands_dev_v1_202601/internal/model"
)

// ==================== 所有权校验 ====================
//
// 纯谓词：给定已解析的身份与目标资源，返回 nil（放行）
// 或携带具体拒绝原因的哨兵错误，不做任何状态变更。

// CheckOrderOwner 校验订单归属买家
// ID 与邮箱双重比对：订单预加载的 User 必须与解析出的买家完全一致
func CheckOrderOwner(user *model.User, order *model.Order) error {
	if order.UserID != user.ID {
		return ErrNotOwner
	}
	if order.User.Email != user.Email {
		return ErrNotOwner
	}
	return nil
}

// CheckOrderArtisan 校验订单与卖家的传递归属
// 至少有一个订单项的商品归属该卖家才放行
func CheckOrderArtisan(artisanID int64, order *model.Order) error {
	for _, item := range order.Items {
		if item.Product.ArtisanID == artisanID {
			return nil
		}
	}
	return ErrArtisanMismatch
}

// CheckProductOwner 校验商品归属卖家
func CheckProductOwner(artisanID int64, product *model.Product) error {
	if product.ArtisanID != artisanID {
		return ErrNotOwner
	}
	return nil
}
