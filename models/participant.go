package models

import (
	"gorm.io/gorm"
)

// Participant はゲーム内の参加者を表します。
// TotalPoints はスコア合計の非正規化キャッシュで、スコア更新と
// 同一トランザクション内で再計算されます（scoringパッケージ参照）。
type Participant struct {
	gorm.Model
	GameID      uint   `gorm:"index;not null"`
	UserID      *uint  `gorm:"index"` // 登録ユーザーに紐づく場合のみ設定（招待経由）
	Name        string `gorm:"not null"`
	TotalPoints int    `gorm:"not null;default:0"`
}
