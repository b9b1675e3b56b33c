package models

import (
	"gorm.io/gorm"
)

// 招待のステータス
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
	InvitationExpired  = "expired"
)

// GameInvitation はゲームへの招待を別テーブルで管理します。
// 承諾されると招待先ユーザーに紐づくParticipantが作成されます。
type GameInvitation struct {
	gorm.Model
	GameID       uint   `gorm:"index;not null"`
	InviterID    uint   `gorm:"not null"`        // 招待したユーザーのID
	InviteeEmail string `gorm:"index;not null"`  // 招待先のメールアドレス
	InviteeID    *uint  // 承諾時に設定される招待先ユーザーのID
	Status       string `gorm:"index;default:'pending'"`
	Game         Game   `gorm:"foreignKey:GameID"`
}
