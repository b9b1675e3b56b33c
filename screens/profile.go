package screens

import (
	"net/http"

	"vennespill/middlewares"
	"vennespill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Profile はユーザープロフィールと統計（権限、所有ゲーム数、
// 購入済みコンセプト数）を返すハンドラです。
func Profile(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	var profile models.UserProfile
	if err := db.First(&profile, userID).Error; err != nil {
		logger.Error("Failed to fetch user profile", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var gameCount int64
	db.Model(&models.Game{}).Where("user_id = ?", userID).Count(&gameCount)

	var orderCount int64
	db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount)

	role := "user"
	if middlewares.IsAdmin(db, logger, userID) {
		role = "admin"
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":      profile.ID,
		"displayName": profile.DisplayName,
		"email":       profile.Email,
		"memberSince": profile.CreatedAt,
		"role":        role,
		"gameCount":   gameCount,
		"orderCount":  orderCount,
	})
}
