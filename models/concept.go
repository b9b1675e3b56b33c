package models

import (
	"gorm.io/gorm"
)

// Concept は購入可能な競技テンプレートです（カタログ）。
type Concept struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string
	Rules       string // ルール説明（表示用テキスト）
	PriceNOK    int    `gorm:"not null;default:0"` // 価格（ノルウェークローネ）
}

// Order はコンセプト購入の注文レコードです。
// 決済処理は未実装のため、注文はpendingのまま記録のみ行います。
type Order struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	ConceptID uint   `gorm:"not null"`
	Status    string `gorm:"not null;default:'pending'"`
}
