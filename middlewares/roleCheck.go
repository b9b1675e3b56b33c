package middlewares

import (
	"vennespill/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IsAdmin はuser_rolesテーブルを照会してadmin権限の有無を返します。
func IsAdmin(db *gorm.DB, logger *zap.Logger, userID uint) bool {
	var role models.UserRole
	err := db.Where("user_id = ? AND role = ?", userID, "admin").First(&role).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("権限の照会に失敗", zap.Error(err))
		}
		return false
	}
	return true
}
