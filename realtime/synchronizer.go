package realtime

import (
	"context"
	"encoding/json"

	"vennespill/models"
	"vennespill/scoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// subscribeChannels はゲームビューが購読する3チャンネルを返します。
// 参加者とラウンドはゲームIDで絞り込み、スコアは全体チャンネル。
func subscribeChannels(gameID uint) []string {
	return []string{
		models.ParticipantsChannel(gameID),
		models.RoundsChannel(gameID),
		models.ScoresChannel(),
	}
}

// runSynchronizer は変更イベントを待ち受け、イベントごとに
// 全件再取得と再集計を行ってビューの全クライアントへ配信します。
// イベントのペイロードは増分更新に使わず、常に再取得します。
// 購読自体はJoinが確立済みで、破棄はLeaveが行います。
func (h *Hub) runSynchronizer(ctx context.Context, view *GameView) {
	ch := view.pubsub.Channel()

	// 購読開始時に初期スナップショットを配信
	go h.refresh(ctx, view, view.beginRefresh())

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				h.logger.Error("変更イベントのデコードに失敗",
					zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			h.logger.Info("Change event received",
				zap.Uint("GameID", view.gameID),
				zap.String("table", event.Table),
				zap.String("action", event.Action))
			go h.refresh(ctx, view, view.beginRefresh())
		}
	}
}

// refresh はゲームの状態を再取得して配信します。
// 取得中にさらに新しいイベントが届いていた場合、結果は破棄します。
func (h *Hub) refresh(ctx context.Context, view *GameView, gen uint64) {
	state, err := h.svc.FetchGameState(ctx, view.gameID)
	if err != nil {
		h.logger.Error("ゲーム状態の再取得に失敗",
			zap.Uint("GameID", view.gameID), zap.Error(err))
		return
	}
	if !view.stillCurrent(gen) {
		return
	}
	view.BroadcastGameState(state, h.logger)
}

// BroadcastGameState は集計済みスナップショットをビューの
// 全クライアントへ送信します。
func (v *GameView) BroadcastGameState(state *scoring.GameState, logger *zap.Logger) {
	message := map[string]interface{}{
		"type":         "gameState",
		"game":         state.Game,
		"participants": state.Participants,
		"rounds":       state.Rounds,
		"combined":     state.Combined,
		"leaderboard":  scoring.BuildGameLeaderboard(state.Participants),
	}
	messageJSON, err := json.Marshal(message)
	if err != nil {
		logger.Error("Failed to marshal game state", zap.Error(err))
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for client := range v.clients {
		if client.Conn == nil {
			continue
		}
		if err := client.WriteMessage(websocket.TextMessage, messageJSON); err != nil {
			logger.Error("Failed to broadcast game state",
				zap.Uint("UserID", client.UserID), zap.Error(err))
		}
	}
}
