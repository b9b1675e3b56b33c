package screens

import (
	"net/http"
	"strconv"

	"vennespill/middlewares"
	"vennespill/scoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GameDetail はゲームビュー1枚分のスナップショット
// （参加者・ラウンド・集計済みスコア）を返すハンドラです。
func GameDetail(c *gin.Context, svc *scoring.Service, logger *zap.Logger) {
	if _, err := middlewares.GetUserIDFromToken(c, logger); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	state, err := svc.FetchGameState(c.Request.Context(), uint(gameID))
	if err != nil {
		logger.Error("Failed to fetch game state", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to fetch game"})
		return
	}

	// ラウンドの表示名を付与して返す
	var roundsData []map[string]interface{}
	for _, round := range state.Rounds {
		r := round
		roundsData = append(roundsData, map[string]interface{}{
			"roundId":     r.ID,
			"roundNumber": r.RoundNumber,
			"roundName":   r.RoundName,
			"displayName": r.DisplayName(),
			"createdAt":   r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"game":         state.Game,
		"participants": state.Participants,
		"rounds":       roundsData,
		"combined":     state.Combined,
	})
}
