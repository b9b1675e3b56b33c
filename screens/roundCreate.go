package screens

import (
	"net/http"
	"strconv"

	"vennespill/middlewares"
	"vennespill/models"
	"vennespill/scoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoundCreate はラウンド作成を処理するハンドラです。
// 参加者のいないゲームでは409で拒否されます。
func RoundCreate(c *gin.Context, db *gorm.DB, svc *scoring.Service, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := db.Where("id = ? AND user_id = ?", gameID, userID).First(&game).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your game"})
		return
	}

	var request models.RoundCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Round create request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	round, err := svc.CreateRound(c.Request.Context(), uint(gameID), request.RoundName)
	if err != nil {
		logger.Error("Failed to create round", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to create round"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Round successfully created",
		"roundId":     round.ID,
		"roundNumber": round.RoundNumber,
		"displayName": round.DisplayName(),
	})
}
