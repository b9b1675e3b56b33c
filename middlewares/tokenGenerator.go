package middlewares

import (
	"time"

	"vennespill/auth"
	"vennespill/models"

	jwt "github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func GenerateToken(db *gorm.DB, logger *zap.Logger, request models.LoginRequest, existingUserID uint) (string, uint, error) {
	var expirationTime time.Time
	var userID uint
	var err error

	if existingUserID > 0 {
		// 既存のユーザーIDを再利用
		userID = existingUserID
	} else {
		// 新しいユーザープロフィールを作成してIDを採番
		userID, err = GenerateUserID(db, logger, request)
		if err != nil {
			logger.Error("トークン生成中にエラー発生", zap.Error(err))
			return "", 0, err
		}
	}

	// トークンの有効期限を設定
	if request.SubscriptionStatus == "paid" {
		expirationTime = time.Now().Add(72 * time.Hour)
	} else {
		expirationTime = time.Now().Add(24 * time.Hour)
	}

	// JWTトークン生成時に内包するデータ
	claims := &models.MyClaims{
		UserID:             userID,
		SubscriptionStatus: request.SubscriptionStatus,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JwtKey)

	return tokenString, userID, err
}

// GORMによるオートインクリメントユーザーIDを生成する関数
func GenerateUserID(db *gorm.DB, logger *zap.Logger, request models.LoginRequest) (uint, error) {
	user := models.UserProfile{
		DisplayName:        request.DisplayName,
		Email:              request.Email,
		SubscriptionStatus: request.SubscriptionStatus,
	}
	if user.SubscriptionStatus == "" {
		user.SubscriptionStatus = "free"
	}
	if err := db.Create(&user).Error; err != nil {
		logger.Error("ユーザーID生成中にエラー発生", zap.Error(err))
		return 0, err
	}

	// デフォルトの権限を付与
	role := models.UserRole{UserID: user.ID, Role: "user"}
	if err := db.Create(&role).Error; err != nil {
		logger.Error("権限レコードの作成に失敗", zap.Error(err))
		return 0, err
	}
	return user.ID, nil
}
