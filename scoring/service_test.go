package scoring

import (
	"context"
	"os"
	"testing"

	"vennespill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB はTEST_DATABASE_DSNで指定されたPostgreSQLに接続し、
// テーブルを作り直します。未設定ならテストをスキップします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(
		&models.Score{}, &models.Round{}, &models.Participant{},
		&models.GameInvitation{}, &models.Game{},
	))
	require.NoError(t, db.AutoMigrate(
		&models.Game{}, &models.Participant{}, &models.Round{},
		&models.Score{}, &models.GameInvitation{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := setupTestDB(t)
	return NewService(db, nil, zap.NewNop()), db
}

func seedGame(t *testing.T, db *gorm.DB, groupName string) *models.Game {
	t.Helper()
	game := models.Game{UserID: 1, ConceptID: 1, GroupName: groupName}
	require.NoError(t, db.Create(&game).Error)
	return &game
}

func TestCreateRoundSequentialNumbers(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Fredagsgjengen")

	_, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		round, err := svc.CreateRound(ctx, game.ID, "")
		require.NoError(t, err)
		assert.Equal(t, i, round.RoundNumber)
	}

	var rounds []models.Round
	require.NoError(t, db.Where("game_id = ?", game.ID).
		Order("round_number ASC").Find(&rounds).Error)
	require.Len(t, rounds, 4)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.RoundNumber)
	}
}

func TestCreateRoundRequiresParticipants(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Tomt spill")

	_, err := svc.CreateRound(ctx, game.ID, "")
	require.ErrorIs(t, err, ErrPrecondition)

	// ラウンド行が作られていないこと
	var count int64
	require.NoError(t, db.Model(&models.Round{}).
		Where("game_id = ?", game.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitRoundScoresIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Hytteturen")

	anne, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)
	bjorn, err := svc.AddParticipant(ctx, game.ID, "Bjørn", nil)
	require.NoError(t, err)

	round, err := svc.CreateRound(ctx, game.ID, "")
	require.NoError(t, err)

	points := map[uint]int{anne.ID: 5, bjorn.ID: 3}
	require.NoError(t, svc.SubmitRoundScores(ctx, game.ID, round.ID, points))
	require.NoError(t, svc.SubmitRoundScores(ctx, game.ID, round.ID, points))

	// 重複行は無く、参加者ごとにちょうど1行
	var scores []models.Score
	require.NoError(t, db.Where("round_id = ?", round.ID).Find(&scores).Error)
	require.Len(t, scores, 2)

	state, err := svc.FetchGameState(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, state.Combined[0].TotalPoints)
	assert.Equal(t, 3, state.Combined[1].TotalPoints)
}

func TestSubmitRoundScoresMaintainsTotalsAcrossRounds(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Hytteturen")

	anne, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)

	round1, err := svc.CreateRound(ctx, game.ID, "")
	require.NoError(t, err)
	round2, err := svc.CreateRound(ctx, game.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.SubmitRoundScores(ctx, game.ID, round1.ID, map[uint]int{anne.ID: 5}))
	require.NoError(t, svc.SubmitRoundScores(ctx, game.ID, round2.ID, map[uint]int{anne.ID: 7}))

	var stored models.Participant
	require.NoError(t, db.First(&stored, anne.ID).Error)
	assert.Equal(t, 12, stored.TotalPoints)

	// 再提出で片方を上書きしても合計が追従する
	require.NoError(t, svc.SubmitRoundScores(ctx, game.ID, round2.ID, map[uint]int{anne.ID: 1}))
	require.NoError(t, db.First(&stored, anne.ID).Error)
	assert.Equal(t, 6, stored.TotalPoints)
}

func TestSubmitRoundScoresDefaultsOmittedParticipantsToZero(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Hytteturen")

	anne, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)
	bjorn, err := svc.AddParticipant(ctx, game.ID, "Bjørn", nil)
	require.NoError(t, err)

	round, err := svc.CreateRound(ctx, game.ID, "")
	require.NoError(t, err)

	// Bjørnを省略して提出
	require.NoError(t, svc.SubmitRoundScores(ctx, game.ID, round.ID, map[uint]int{anne.ID: 4}))

	var score models.Score
	require.NoError(t, db.Where("round_id = ? AND participant_id = ?",
		round.ID, bjorn.ID).First(&score).Error)
	assert.Equal(t, 0, score.Points)
}

func TestSubmitRoundScoresRejectsForeignRound(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Spill A")
	other := seedGame(t, db, "Spill B")

	_, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, other.ID, "Bjørn", nil)
	require.NoError(t, err)

	foreignRound, err := svc.CreateRound(ctx, other.ID, "")
	require.NoError(t, err)

	err = svc.SubmitRoundScores(ctx, game.ID, foreignRound.ID, map[uint]int{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestSubmitRoundScoresRejectsNegativePoints(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Spill A")

	anne, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)
	round, err := svc.CreateRound(ctx, game.ID, "")
	require.NoError(t, err)

	err = svc.SubmitRoundScores(ctx, game.ID, round.ID, map[uint]int{anne.ID: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRenameRoundStoresSubmittedValueVerbatim(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Hytteturen")

	_, err := svc.AddParticipant(ctx, game.ID, "Anne", nil)
	require.NoError(t, err)
	round, err := svc.CreateRound(ctx, game.ID, "Quiz")
	require.NoError(t, err)

	renamed, err := svc.RenameRound(ctx, game.ID, round.ID, "  Finale  ")
	require.NoError(t, err)
	assert.Equal(t, "  Finale  ", renamed.RoundName)

	// 空文字も保存され、表示名はフォールバックする
	renamed, err = svc.RenameRound(ctx, game.ID, round.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "", renamed.RoundName)
	assert.Equal(t, "Runde 1", renamed.DisplayName())
}

func TestRenameRoundNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RenameRound(ctx, 1, 12345, "Finale")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddParticipantRequiresName(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	game := seedGame(t, db, "Hytteturen")

	_, err := svc.AddParticipant(ctx, game.ID, "", nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCrossGameLeaderboardBatchesAcrossGames(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	gameA := seedGame(t, db, "Spill A")
	gameB := seedGame(t, db, "Spill B")

	a, err := svc.AddParticipant(ctx, gameA.ID, "A", nil)
	require.NoError(t, err)
	b, err := svc.AddParticipant(ctx, gameB.ID, "B", nil)
	require.NoError(t, err)
	cp, err := svc.AddParticipant(ctx, gameB.ID, "C", nil)
	require.NoError(t, err)

	roundA, err := svc.CreateRound(ctx, gameA.ID, "")
	require.NoError(t, err)
	roundB, err := svc.CreateRound(ctx, gameB.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.SubmitRoundScores(ctx, gameA.ID, roundA.ID, map[uint]int{a.ID: 5}))
	require.NoError(t, svc.SubmitRoundScores(ctx, gameB.ID, roundB.ID, map[uint]int{b.ID: 15, cp.ID: 5}))

	entries, err := svc.CrossGameLeaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// B(15)が先頭、同点5のAとCは出会った順
	assert.Equal(t, b.ID, entries[0].ParticipantID)
	assert.Equal(t, a.ID, entries[1].ParticipantID)
	assert.Equal(t, cp.ID, entries[2].ParticipantID)
	assert.Equal(t, "Spill B", entries[0].GameName)
}
