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

// ParticipantAdd はゲームへの参加者の直接追加を処理するハンドラです。
// 追加できるのはゲームのオーナーのみ。
func ParticipantAdd(c *gin.Context, db *gorm.DB, svc *scoring.Service, logger *zap.Logger) {
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

	// オーナーであることを確認
	var game models.Game
	if err := db.Where("id = ? AND user_id = ?", gameID, userID).First(&game).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your game"})
		return
	}

	var request models.ParticipantAddRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Participant add request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	participant, err := svc.AddParticipant(c.Request.Context(), uint(gameID), request.Name, nil)
	if err != nil {
		logger.Error("Failed to add participant", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to add participant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Participant successfully added",
		"participantId": participant.ID,
	})
}
