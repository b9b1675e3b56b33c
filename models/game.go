package models

import (
	"gorm.io/gorm"
)

// Game モデルの定義。購入したコンセプトを元に作られる競技インスタンス。
// 作成後の編集フローは無く、削除はカスケードのみ。
type Game struct {
	gorm.Model
	UserID       uint          `gorm:"index;not null"` // 作成者（オーナー）のユーザーID
	ConceptID    uint          `gorm:"not null"`       // 購入済みコンセプトのID
	GroupName    string        `gorm:"not null"`       // グループの表示名
	Participants []Participant `gorm:"foreignKey:GameID"`
	Rounds       []Round       `gorm:"foreignKey:GameID"`
}
