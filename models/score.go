package models

import (
	"time"
)

// Score は特定の参加者が特定のラウンドで獲得したポイントです。
// (round_id, participant_id) の組につき最大1行。置き換えプロトコルに
// 加えてユニークインデックスでも保証します。
// 置き換え時に物理削除するため、gorm.Modelの論理削除は使いません。
type Score struct {
	ID            uint `gorm:"primaryKey"`
	GameID        uint `gorm:"index;not null"` // ゲーム単位の一括取得用に非正規化
	RoundID       uint `gorm:"not null;uniqueIndex:idx_round_participant"`
	ParticipantID uint `gorm:"not null;uniqueIndex:idx_round_participant"`
	Points        int  `gorm:"not null;default:0"` // 非負整数
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
