package models

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Websocketクライアントを定義。ゲームビューを開いている1接続に対応。
// 書き込みは複数ゴルーチン（配信とping）から行われるためWriteMuで直列化。
type Client struct {
	Conn    *websocket.Conn
	WriteMu sync.Mutex
	UserID  uint // JWTから抽出したユーザーID
	GameID  uint // 開いているゲームのID
}

// WriteMessage は接続への書き込みを直列化して行います。
func (c *Client) WriteMessage(messageType int, data []byte) error {
	c.WriteMu.Lock()
	defer c.WriteMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}
