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

// InvitationCreate はゲームへの招待作成を処理するハンドラです。
// 招待できるのはゲームのオーナーのみ。
func InvitationCreate(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
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

	var request models.InvitationCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Email == "" {
		logger.Error("Invitation create request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	// 同じゲーム・同じメール宛のpending招待は二重に作らない
	var existing models.GameInvitation
	if err := db.Where("game_id = ? AND invitee_email = ? AND status = ?",
		gameID, request.Email, models.InvitationPending).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitation already pending"})
		return
	}

	invitation := models.GameInvitation{
		GameID:       uint(gameID),
		InviterID:    userID,
		InviteeEmail: request.Email,
		Status:       models.InvitationPending,
	}
	if err := db.Create(&invitation).Error; err != nil {
		logger.Error("Failed to create a new invitation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Invitation successfully created",
		"invitationId": invitation.ID,
	})
}

// MyInvitations は自分宛の招待一覧を返すハンドラです。
// 照合はユーザープロフィールのメールアドレスで行います。
func MyInvitations(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	var profile models.UserProfile
	if err := db.First(&profile, userID).Error; err != nil {
		logger.Error("Failed to fetch user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user data"})
		return
	}

	var invitations []models.GameInvitation
	if err := db.Where("invitee_email = ?", profile.Email).
		Order("created_at DESC").Find(&invitations).Error; err != nil {
		logger.Error("Failed to find invitations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	// 各招待に紐づくゲーム名と招待者名も同時に取得
	var invitationsData []map[string]interface{}
	for _, invitation := range invitations {
		var game models.Game
		db.First(&game, invitation.GameID)
		var inviter models.UserProfile
		db.Select("display_name").First(&inviter, invitation.InviterID)

		invitationsData = append(invitationsData, map[string]interface{}{
			"invitationId": invitation.ID,
			"gameId":       invitation.GameID,
			"groupName":    game.GroupName,
			"inviterName":  inviter.DisplayName,
			"status":       invitation.Status,
			"createdAt":    invitation.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"invitations": invitationsData})
}

// InvitationReply は招待の承諾・拒否を処理するハンドラです。
// 承諾すると招待先ユーザーに紐づく参加者が作成されます。
func InvitationReply(c *gin.Context, db *gorm.DB, svc *scoring.Service, logger *zap.Logger) {
	userID, err := middlewares.GetUserIDFromToken(c, logger)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "認証に失敗しました"})
		return
	}

	invitationID, err := strconv.ParseUint(c.Param("invitationId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	var request struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Invitation reply request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request binding error"})
		return
	}

	var profile models.UserProfile
	if err := db.First(&profile, userID).Error; err != nil {
		logger.Error("Failed to fetch user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user data"})
		return
	}

	// 自分宛のpending招待のみ処理できる
	var invitation models.GameInvitation
	if err := db.Where("id = ? AND invitee_email = ? AND status = ?",
		invitationID, profile.Email, models.InvitationPending).First(&invitation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}

	if !request.Accept {
		if err := db.Model(&invitation).Update("status", models.InvitationRejected).Error; err != nil {
			logger.Error("Failed to reject invitation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject invitation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Invitation rejected"})
		return
	}

	if err := db.Model(&invitation).Updates(map[string]interface{}{
		"status":     models.InvitationAccepted,
		"invitee_id": userID,
	}).Error; err != nil {
		logger.Error("Failed to accept invitation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	// 招待先ユーザーに紐づく参加者を作成
	name := profile.DisplayName
	if name == "" {
		name = profile.Email
	}
	participant, err := svc.AddParticipant(c.Request.Context(), invitation.GameID, name, &profile.ID)
	if err != nil {
		logger.Error("Failed to create participant from invitation", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to join game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Invitation accepted",
		"participantId": participant.ID,
	})
}
