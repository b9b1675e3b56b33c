package models

// LoginRequest はクライアントからのログインリクエストを表します。
// トークンが提供されている場合、それを使用してユーザーを認証します。
// トークンがない場合、新しいユーザーとトークンが生成されます。
type LoginRequest struct {
	Token              string `json:"token,omitempty"`              // 既存のトークン
	SubscriptionStatus string `json:"subscriptionStatus,omitempty"` // 課金ステータス
	DisplayName        string `json:"displayName,omitempty"`        // 表示名
	Email              string `json:"email,omitempty"`              // メールアドレス
}

// GameCreateRequest はゲーム作成リクエストのボディです。
type GameCreateRequest struct {
	ConceptID uint   `json:"conceptId"`
	GroupName string `json:"groupName"`
}

// ParticipantAddRequest は参加者追加リクエストのボディです。
type ParticipantAddRequest struct {
	Name string `json:"name"`
}

// RoundCreateRequest はラウンド作成リクエストのボディです。名前は任意。
type RoundCreateRequest struct {
	RoundName string `json:"roundName,omitempty"`
}

// RoundRenameRequest はラウンド名変更リクエストのボディです。
type RoundRenameRequest struct {
	RoundName string `json:"roundName"`
}

// ScoreSubmitRequest はラウンドのスコア一括提出のボディです。
// キーは参加者ID。含まれない参加者は0点として記録されます。
type ScoreSubmitRequest struct {
	Points map[uint]int `json:"points"`
}

// InvitationCreateRequest は招待作成リクエストのボディです。
type InvitationCreateRequest struct {
	Email string `json:"email"`
}

// OrderCreateRequest はコンセプト購入（スタブ）リクエストのボディです。
type OrderCreateRequest struct {
	ConceptID uint `json:"conceptId"`
}
