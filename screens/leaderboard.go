package screens

import (
	"net/http"
	"strconv"

	"vennespill/middlewares"
	"vennespill/scoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GameLeaderboardHandler は1ゲーム分のポイントランキングを返します。
func GameLeaderboardHandler(c *gin.Context, svc *scoring.Service, logger *zap.Logger) {
	if _, err := middlewares.GetUserIDFromToken(c, logger); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	entries, err := svc.GameLeaderboard(c.Request.Context(), uint(gameID))
	if err != nil {
		logger.Error("Failed to build game leaderboard", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to build leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// CrossGameLeaderboardHandler はユーザーの全ゲームを横断した
// ポイントランキングを返します。
func CrossGameLeaderboardHandler(c *gin.Context, svc *scoring.Service, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	entries, err := svc.CrossGameLeaderboard(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build cross-game leaderboard", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to build leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
