package realtime

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"vennespill/auth"
	"vennespill/models"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tokenValidation はWebSocketリクエストのJWTを検証してクレームを返します。
func tokenValidation(r *http.Request, logger *zap.Logger) (*models.MyClaims, error) {
	tokenString := r.Header.Get("Authorization")
	if strings.HasPrefix(tokenString, "Bearer ") {
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	}
	if tokenString == "" {
		// ブラウザのWebSocket APIはヘッダーを設定できないためクエリも許可
		tokenString = r.URL.Query().Get("token")
	}

	claims, err := auth.ParseClaims(tokenString)
	if err != nil {
		logger.Error("Failed to validate token", zap.Error(err))
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	return claims, nil
}

// accessGranted はユーザーがこのゲームのビューを開けるかを返します。
// オーナー本人か、登録ユーザーとして紐づく参加者のみ許可。
func accessGranted(db *gorm.DB, userID, gameID uint) bool {
	var game models.Game
	if err := db.Where("id = ? AND user_id = ?", gameID, userID).First(&game).Error; err == nil {
		return true
	}
	var participant models.Participant
	if err := db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&participant).Error; err == nil {
		return true
	}
	return false
}

// HandleConnections はWebSocket接続へのアップグレードを行い、
// クライアントをゲームビューに登録します。ビューを閉じる（接続を
// 切る）と購読は確実に破棄されます。
func HandleConnections(ctx context.Context, w http.ResponseWriter, r *http.Request, db *gorm.DB, rdb *redis.Client, hub *Hub, logger *zap.Logger, upgrader websocket.Upgrader) {
	claims, err := tokenValidation(r, logger)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// ゲームIDをクエリから取得
	gameIDStr := r.URL.Query().Get("game")
	gameIDUint, err := strconv.ParseUint(gameIDStr, 10, 32)
	if err != nil {
		logger.Error("Invalid game ID format", zap.Error(err))
		http.Error(w, "Invalid game ID format", http.StatusBadRequest)
		return
	}
	gameID := uint(gameIDUint)

	userID := claims.UserID

	// セッションIDの検証と復元
	sessionID := r.Header.Get("SessionID")
	if sessionID == "" {
		sessionID = r.URL.Query().Get("session")
	}
	if sessionID != "" {
		if restored := ValidateSessionID(ctx, rdb, sessionID, logger); restored != nil {
			userID = restored.UserID
			gameID = restored.GameID
			rdb.Del(ctx, "session:"+sessionID) // 旧セッションの削除
		} else {
			http.Error(w, "Invalid or expired session ID", http.StatusUnauthorized)
			return
		}
	}

	if !accessGranted(db, userID, gameID) {
		http.Error(w, "Not authorized", http.StatusForbidden)
		return
	}

	// WebSocket接続へのアップグレードと確立
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Error upgrading WebSocket", zap.Error(err))
		return
	}

	client := &models.Client{
		Conn:   conn,
		UserID: userID,
		GameID: gameID,
	}

	// WebSocketのCloseHandlerを設定
	conn.SetCloseHandler(func(code int, text string) error {
		logger.Info("WebSocket closed", zap.Int("code", code), zap.String("reason", text))
		conn.Close()
		hub.Leave(client)
		return nil
	})

	view := hub.Join(client)
	logger.Info("New client added",
		zap.Uint("UserID", userID), zap.Uint("GameID", gameID))

	// 新しいセッションIDの発行と保存
	if err := GenerateAndStoreSessionID(ctx, client, rdb, logger); err != nil {
		logger.Error("Failed to generate or store session ID", zap.Error(err))
	}

	// 参加直後に現在のスナップショットを配信
	go hub.refresh(context.Background(), view, view.beginRefresh())

	// クライアントごとにメッセージ読み取りとPing/Pongのゴルーチンを起動
	go hub.handleClient(context.Background(), client, view)
	go hub.pingLoop(client)
}
