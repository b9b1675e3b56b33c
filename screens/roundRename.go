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

// RoundRename はラウンド名の変更を処理するハンドラです。
// 提出された値をそのまま保存します（空文字も可）。
func RoundRename(c *gin.Context, db *gorm.DB, svc *scoring.Service, logger *zap.Logger) {
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
	roundID, err := strconv.ParseUint(c.Param("roundId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round ID"})
		return
	}

	var game models.Game
	if err := db.Where("id = ? AND user_id = ?", gameID, userID).First(&game).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your game"})
		return
	}

	var request models.RoundRenameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Round rename request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	round, err := svc.RenameRound(c.Request.Context(), uint(gameID), uint(roundID), request.RoundName)
	if err != nil {
		logger.Error("Failed to rename round", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to rename round"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Round successfully renamed",
		"roundId":     round.ID,
		"displayName": round.DisplayName(),
	})
}
