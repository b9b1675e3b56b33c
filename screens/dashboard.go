package screens

import (
	"net/http"

	"vennespill/middlewares"
	"vennespill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dashboard はホーム画面に表示される統計情報を返すハンドラです。
// 参加者数は所有ゲーム全体に対する1クエリで数えます。
func Dashboard(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	var games []models.Game
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&games).Error; err != nil {
		logger.Error("Failed to find games owned by the user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	gameIDs := make([]uint, 0, len(games))
	for _, game := range games {
		gameIDs = append(gameIDs, game.ID)
	}

	var totalParticipants int64
	if len(gameIDs) > 0 {
		if err := db.Model(&models.Participant{}).
			Where("game_id IN ?", gameIDs).
			Count(&totalParticipants).Error; err != nil {
			logger.Error("Failed to count participants", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count participants"})
			return
		}
	}

	// 直近3件のゲーム
	recentGames := games
	if len(recentGames) > 3 {
		recentGames = recentGames[:3]
	}
	var recentData []map[string]interface{}
	for _, game := range recentGames {
		var concept models.Concept
		db.Select("name").First(&concept, game.ConceptID)
		recentData = append(recentData, map[string]interface{}{
			"gameId":      game.ID,
			"groupName":   game.GroupName,
			"conceptName": concept.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalGames":        len(games),
		"totalParticipants": totalParticipants,
		"recentGames":       recentData,
	})
}
