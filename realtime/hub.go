package realtime

import (
	"context"
	"sync"
	"sync/atomic"

	"vennespill/models"
	"vennespill/scoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Hub は開いているゲームビューごとのリアルタイム同期を管理します。
// ゲームにつきGameViewは1つで、最初のクライアント参加時に購読を
// 開始し、最後のクライアント退出時に破棄します。
type Hub struct {
	mu     sync.Mutex
	views  map[uint]*GameView
	svc    *scoring.Service
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHub(svc *scoring.Service, rdb *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{
		views:  make(map[uint]*GameView),
		svc:    svc,
		rdb:    rdb,
		logger: logger,
	}
}

// GameView は1ゲーム分の購読とクライアント集合を保持します。
type GameView struct {
	gameID     uint
	generation uint64 // 再取得の世代カウンタ。古い応答の破棄に使用

	mu      sync.Mutex
	clients map[*models.Client]bool

	cancel context.CancelFunc
	pubsub *redis.PubSub // Joinでビュー公開前に設定され、以後書き換えない
}

// beginRefresh は新しい再取得の開始を記録し、その世代を返します。
func (v *GameView) beginRefresh() uint64 {
	return atomic.AddUint64(&v.generation, 1)
}

// stillCurrent は世代genの再取得結果をまだ反映してよいかを返します。
// より新しいイベントが届いていたらfalse（結果は破棄）。
func (v *GameView) stillCurrent(gen uint64) bool {
	return atomic.LoadUint64(&v.generation) == gen
}

// Join はクライアントをゲームビューに登録します。
// そのゲームの最初のクライアントであれば購読を開始します。
func (h *Hub) Join(client *models.Client) *GameView {
	h.mu.Lock()
	defer h.mu.Unlock()

	view, ok := h.views[client.GameID]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		view = &GameView{
			gameID:  client.GameID,
			clients: make(map[*models.Client]bool),
			cancel:  cancel,
		}
		// 購読はゴルーチン起動前にここで確立する。Leaveが先に走っても
		// pubsubがnilで閉じ損ねることはない。
		view.pubsub = h.rdb.Subscribe(ctx, subscribeChannels(client.GameID)...)
		h.views[client.GameID] = view
		go h.runSynchronizer(ctx, view)
		h.logger.Info("Game view opened", zap.Uint("GameID", client.GameID))
	}

	view.mu.Lock()
	view.clients[client] = true
	view.mu.Unlock()
	return view
}

// Leave はクライアントを登録解除し、ビューが空になったら
// 購読を確実に破棄します。
func (h *Hub) Leave(client *models.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	view, ok := h.views[client.GameID]
	if !ok {
		return
	}

	view.mu.Lock()
	delete(view.clients, client)
	empty := len(view.clients) == 0
	view.mu.Unlock()

	if empty {
		view.cancel()
		view.pubsub.Close()
		delete(h.views, client.GameID)
		h.logger.Info("Game view closed", zap.Uint("GameID", client.GameID))
	}
}
