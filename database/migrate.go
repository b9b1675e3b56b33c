package database

import (
	"vennespill/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrateDB は全モデルのテーブルを作成・更新します。
// 起動時にmain.goから呼び出されます。
func AutoMigrateDB(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&models.UserProfile{},
		&models.UserRole{},
		&models.Concept{},
		&models.Order{},
		&models.Game{},
		&models.Participant{},
		&models.Round{},
		&models.Score{},
		&models.GameInvitation{},
	)
	if err != nil {
		logger.Error("テーブルのマイグレーションに失敗しました", zap.Error(err))
		return err
	}
	logger.Info("All tables migrated successfully")
	return nil
}
