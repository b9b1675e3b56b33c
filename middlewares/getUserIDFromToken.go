package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"vennespill/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// リクエストからJWTトークンを取得し、ユーザーIDを解析して返します。
func GetUserIDFromToken(c *gin.Context, logger *zap.Logger) (uint, error) {
	// トークンをリクエストヘッダーから取得
	tokenString := c.GetHeader("Authorization")

	// Bearerトークンのプレフィックスを確認し、存在する場合は削除
	if strings.HasPrefix(tokenString, "Bearer ") {
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	}

	if tokenString == "" {
		logger.Error("Token string is empty")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return 0, fmt.Errorf("token is required")
	}

	// JWTトークンの解析とユーザーIDの取得
	claims, err := auth.ParseClaims(tokenString)
	if err != nil {
		logger.Error("Failed to parse JWT token", zap.Error(err))
		return 0, err
	}
	return claims.UserID, nil
}
