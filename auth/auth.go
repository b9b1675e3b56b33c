package auth

import (
	"fmt"

	"vennespill/models"

	jwt "github.com/dgrijalva/jwt-go"
)

// ParseClaims はトークン文字列を検証し、含まれるクレームを返します。
// 署名が不正・期限切れの場合はエラーを返します。
func ParseClaims(tokenString string) (*models.MyClaims, error) {
	claims := &models.MyClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
