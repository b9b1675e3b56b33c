package screens

import (
	"net/http"

	"vennespill/middlewares"
	"vennespill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConceptList はコンセプトカタログの一覧を返すハンドラです。
func ConceptList(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var concepts []models.Concept
	if err := db.Order("id ASC").Find(&concepts).Error; err != nil {
		logger.Error("Failed to fetch concepts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch concepts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"concepts": concepts})
}

// OrderCreate はコンセプト購入の注文を記録するハンドラです。
// 決済処理は未実装のため、注文はpendingのまま記録されるだけです。
func OrderCreate(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	var request models.OrderCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Order create request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	var concept models.Concept
	if err := db.First(&concept, request.ConceptID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Concept not found"})
		return
	}

	order := models.Order{
		UserID:    userID,
		ConceptID: request.ConceptID,
	}
	if err := db.Create(&order).Error; err != nil {
		logger.Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order successfully created",
		"orderId": order.ID,
	})
}
