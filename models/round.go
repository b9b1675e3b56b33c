package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Round はゲーム内の1つの採点フェーズを表します。
// RoundNumber は作成時に「既存ラウンド数+1」で採番され、ゲームごとに
// 1から連番になります（削除フローは無いため欠番は発生しない）。
type Round struct {
	gorm.Model
	GameID      uint   `gorm:"not null;uniqueIndex:idx_game_round_number"`
	RoundNumber int    `gorm:"not null;uniqueIndex:idx_game_round_number"`
	RoundName   string // 空文字の場合は表示時にデフォルト名へフォールバック
}

// DisplayName はラウンドの表示名を返します。未設定なら「Runde {n}」。
func (r *Round) DisplayName() string {
	if r.RoundName == "" {
		return fmt.Sprintf("Runde %d", r.RoundNumber)
	}
	return r.RoundName
}
