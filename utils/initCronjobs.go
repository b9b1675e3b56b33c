package utils

import (
	"time"

	"vennespill/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func CronCleaner(db *gorm.DB, logger *zap.Logger) {
	c := cron.New()

	// 古いpending招待をexpiredに更新するジョブ（毎日実行）
	c.AddFunc("@daily", func() {
		logger.Info("古い招待を期限切れにする処理を開始")
		result := db.Model(&models.GameInvitation{}).
			Where("status = ? AND created_at <= ?", models.InvitationPending, time.Now().Add(-14*24*time.Hour)).
			Update("status", models.InvitationExpired)
		if result.Error != nil {
			logger.Error("招待の期限切れ処理に失敗しました", zap.Error(result.Error))
		} else if result.RowsAffected > 0 {
			logger.Info("招待の期限切れ処理完了", zap.Int("invitations_expired", int(result.RowsAffected)))
		}
	})

	// expired・rejectedの招待を削除するジョブ（"分 時 日 月 曜日"）
	c.AddFunc("0 3 * * *", func() {
		logger.Info("不要になった招待を削除する処理を開始")
		result := db.Where("status IN ? AND updated_at <= ?",
			[]string{models.InvitationExpired, models.InvitationRejected},
			time.Now().Add(-48*time.Hour)).
			Delete(&models.GameInvitation{})
		if result.Error != nil {
			logger.Error("招待の削除に失敗しました", zap.Error(result.Error))
		} else {
			logger.Info("招待の削除完了", zap.Int("invitations_deleted", int(result.RowsAffected)))
		}
	})

	c.Start()
}
