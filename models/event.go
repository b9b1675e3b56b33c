package models

import (
	"fmt"
)

// 変更イベントのアクション種別
const (
	ActionInsert  = "insert"
	ActionUpdate  = "update"
	ActionReplace = "replace"
)

// ChangeEvent はPersistent Storeの変更通知を表します。
// Redisのpub/subチャンネル経由で配信され、リアルタイム同期の
// トリガーとして使われます。ペイロードは再取得の合図のみで、
// 増分更新には使いません。
type ChangeEvent struct {
	Table  string `json:"table"`
	GameID uint   `json:"gameId,omitempty"`
	Action string `json:"action"`
}

// ParticipantsChannel はゲームIDで絞り込んだ参加者変更チャンネル名を返します。
func ParticipantsChannel(gameID uint) string {
	return fmt.Sprintf("changes:participants:%d", gameID)
}

// RoundsChannel はゲームIDで絞り込んだラウンド変更チャンネル名を返します。
func RoundsChannel(gameID uint) string {
	return fmt.Sprintf("changes:rounds:%d", gameID)
}

// ScoresChannel はスコア変更チャンネル名を返します。
// スコアのみ全ゲーム共通の1チャンネルです（観測された挙動のまま）。
func ScoresChannel() string {
	return "changes:scores"
}
