package realtime

import (
	"context"
	"encoding/json"
	"time"

	"vennespill/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Helper function to send error message to the client via WebSocket
func sendErrorMessage(client *models.Client, errorMessage string) {
	errorResponse := map[string]string{"type": "error", "error": errorMessage}
	errorJSON, _ := json.Marshal(errorResponse)
	client.WriteMessage(websocket.TextMessage, errorJSON) // Ignoring error for simplicity
}

// handleClient はクライアントごとのメッセージ読み取りゴルーチンです。
// ビューはプッシュ専用のため、クライアントからは明示的な再取得要求
// （refresh）のみ受け付けます。
func (h *Hub) handleClient(ctx context.Context, client *models.Client, view *GameView) {
	defer func() {
		client.Conn.Close()
		h.Leave(client)
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket error", zap.Error(err))
			}
			break // エラーが発生したらループを抜ける
		}

		// 受信したメッセージをJSON形式でデコード
		var msg map[string]interface{}
		if err := json.Unmarshal(message, &msg); err != nil {
			h.logger.Error("Error decoding message", zap.Error(err))
			continue
		}

		// メッセージタイプに基づいて適切なアクションを実行
		switch msg["type"] {
		case "refresh":
			go h.refresh(ctx, view, view.beginRefresh())
		default:
			h.logger.Info("Received unknown message type", zap.Any("message", msg))
			sendErrorMessage(client, "unknown message type")
		}
	}
}

// pingLoop はPing/Pongを管理するゴルーチンです。
// Pongが途絶えた接続は読み取りデッドラインで切断されます。
func (h *Hub) pingLoop(client *models.Client) {
	defer func() {
		client.Conn.Close()
		h.Leave(client)
		h.logger.Info("Client removed", zap.Uint("UserID", client.UserID))
	}()

	// Pongハンドラの設定: Pongメッセージを受信したら読み取りデッドラインを更新
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	pingPeriod := 10 * time.Second // 10秒ごとにPingを送信
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if err := client.WriteMessage(websocket.PingMessage, nil); err != nil {
			h.logger.Error("Error sending ping", zap.Error(err))
			return
		}
	}
}
