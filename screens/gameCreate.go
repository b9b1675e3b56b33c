package screens

import (
	"net/http"

	"vennespill/middlewares"
	"vennespill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GameCreate はゲーム作成を処理するハンドラです。
// 購入済み（注文済み）のコンセプトからのみ作成できます。
func GameCreate(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	var request models.GameCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Game create request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}
	if request.GroupName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		return
	}

	// コンセプトの存在確認
	var concept models.Concept
	if err := db.First(&concept, request.ConceptID).Error; err != nil {
		logger.Error("Concept not found", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Concept not found"})
		return
	}

	// 購入済みかを注文レコードで確認
	var order models.Order
	if err := db.Where("user_id = ? AND concept_id = ?", userID, request.ConceptID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Concept is not purchased"})
		return
	}

	game := models.Game{
		UserID:    userID,
		ConceptID: request.ConceptID,
		GroupName: request.GroupName,
	}
	if err := db.Create(&game).Error; err != nil {
		logger.Error("Failed to create a new game", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	if err := db.Model(&models.UserProfile{}).Where("id = ?", userID).
		Update("valid_game_count", gorm.Expr("valid_game_count + 1")).Error; err != nil {
		logger.Error("Failed to update user's valid_game_count", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Game successfully created",
		"gameId":  game.ID,
	})
}
