package models

import (
	"gorm.io/gorm"
)

// UserProfile モデルの定義
type UserProfile struct {
	gorm.Model
	DisplayName        string `gorm:"not null"`        // 表示名
	Email              string `gorm:"unique;not null"` // 招待の照合に使用
	SubscriptionStatus string `gorm:"not null"`        // 課金ステータス（free, paidなど）
	ValidGameCount     int    `gorm:"not null;default:0"`
}

// UserRole はユーザーの権限（admin, user）を別テーブルで管理します。
type UserRole struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Role   string `gorm:"not null;default:'user'"`
}
