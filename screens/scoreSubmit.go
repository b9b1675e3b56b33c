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

// ScoreSubmit はラウンドのスコア一括提出を処理するハンドラです。
// ラウンドの既存スコアは丸ごと置き換えられ、提出に含まれない
// 参加者は0点になります。
func ScoreSubmit(c *gin.Context, db *gorm.DB, svc *scoring.Service, logger *zap.Logger) {
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

	var request models.ScoreSubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Score submit request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	if err := svc.SubmitRoundScores(c.Request.Context(), uint(gameID), uint(roundID), request.Points); err != nil {
		logger.Error("Failed to submit round scores", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to submit scores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scores successfully submitted"})
}
