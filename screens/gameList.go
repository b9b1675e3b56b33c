package screens

import (
	"net/http"

	"vennespill/middlewares"
	"vennespill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MyGames はユーザーが所有するゲームの一覧を返すハンドラです。
func MyGames(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
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

	// コンセプト名も同時に取得
	var gamesData []map[string]interface{}
	for _, game := range games {
		var concept models.Concept
		db.Select("name").First(&concept, game.ConceptID)

		gamesData = append(gamesData, map[string]interface{}{
			"gameId":      game.ID,
			"groupName":   game.GroupName,
			"conceptName": concept.Name,
			"createdAt":   game.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"games": gamesData})
}
