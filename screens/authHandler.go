package screens

import (
	"net/http"

	"vennespill/middlewares"
	"vennespill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LoginHandler はトークンの発行・更新を処理するハンドラです。
// トークンが無ければ新規ユーザーとトークンを作成し、
// 有効期限が近ければ更新されたトークンを返します。
func LoginHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Login request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	userID, newToken, tokenValid, err := middlewares.TokenAuthentication(c, db, logger, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token processing failed"})
		return
	}
	if !tokenValid {
		c.JSON(http.StatusOK, gin.H{
			"status": "token_issued",
			"token":  newToken,
			"userId": userID,
		})
		return
	}
	if newToken != "" {
		c.JSON(http.StatusOK, gin.H{
			"status": "token_refreshed",
			"token":  newToken,
			"userId": userID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "userId": userID})
}
