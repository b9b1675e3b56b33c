package realtime

import (
	"testing"

	"vennespill/models"
	"vennespill/scoring"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestHub は到達不能なRedisと遅延接続のDBでハブを組み立てます。
// Join/Leaveのライフサイクルは実接続なしで検証できます。
func newTestHub(t *testing.T) *Hub {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	db, err := gorm.Open(
		postgres.Open("host=localhost port=1 user=vennespill dbname=vennespill sslmode=disable"),
		&gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	logger := zap.NewNop()
	return NewHub(scoring.NewService(db, rdb, logger), rdb, logger)
}

func TestSubscribeChannels(t *testing.T) {
	channels := subscribeChannels(42)
	assert.Equal(t, []string{
		"changes:participants:42",
		"changes:rounds:42",
		"changes:scores",
	}, channels)
}

func TestStaleRefreshIsDiscarded(t *testing.T) {
	view := &GameView{gameID: 1}

	gen1 := view.beginRefresh()
	assert.True(t, view.stillCurrent(gen1))

	// 取得中に新しいイベントが届いた場合、古い世代は破棄対象になる
	gen2 := view.beginRefresh()
	assert.False(t, view.stillCurrent(gen1))
	assert.True(t, view.stillCurrent(gen2))
}

func TestRefreshGenerationsIncrease(t *testing.T) {
	view := &GameView{gameID: 1}

	prev := view.beginRefresh()
	for i := 0; i < 5; i++ {
		next := view.beginRefresh()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestJoinEstablishesSubscriptionBeforeReturning(t *testing.T) {
	hub := newTestHub(t)
	client := &models.Client{UserID: 1, GameID: 7}

	view := hub.Join(client)
	// 購読はJoinの戻り時点で確立済み。直後にLeaveしても閉じ損ねない。
	assert.NotNil(t, view.pubsub)

	hub.Leave(client)
	hub.mu.Lock()
	_, open := hub.views[7]
	hub.mu.Unlock()
	assert.False(t, open)
}

func TestLeaveClosesViewOnlyWhenLastClientLeaves(t *testing.T) {
	hub := newTestHub(t)
	first := &models.Client{UserID: 1, GameID: 7}
	second := &models.Client{UserID: 2, GameID: 7}

	view := hub.Join(first)
	assert.Equal(t, view, hub.Join(second))

	hub.Leave(first)
	hub.mu.Lock()
	_, open := hub.views[7]
	hub.mu.Unlock()
	assert.True(t, open)

	hub.Leave(second)
	hub.mu.Lock()
	_, open = hub.views[7]
	hub.mu.Unlock()
	assert.False(t, open)
}

func TestLeaveUnknownGameIsNoop(t *testing.T) {
	hub := newTestHub(t)
	assert.NotPanics(t, func() {
		hub.Leave(&models.Client{UserID: 1, GameID: 99})
	})
}

func TestBroadcastSkipsClientsWithoutConnection(t *testing.T) {
	view := &GameView{
		gameID:  1,
		clients: map[*models.Client]bool{{UserID: 1, GameID: 1}: true},
	}

	// Connがnilのクライアントが居てもパニックせず送信をスキップする
	assert.NotPanics(t, func() {
		view.BroadcastGameState(&scoring.GameState{}, zap.NewNop())
	})
}
