package auth

import (
	"os"
)

// JwtKey はトークン署名に使用するシークレットキーです。
// 本番環境では必ず環境変数JWT_SECRETで設定します。
var JwtKey = loadJwtKey()

func loadJwtKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	return []byte("dev_secret_key") // 開発用デフォルト
}
