package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vennespill/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service はスコア集計・ラウンド管理・ポイントランキングの
// 永続化操作をまとめたものです。全ての書き込みはトランザクションで
// 行い、コミット後にRedisへ変更イベントを発行します。
type Service struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{db: db, rdb: rdb, logger: logger}
}

// GameState はゲームビュー1枚分のデータのスナップショットです。
type GameState struct {
	Game         models.Game                  `json:"game"`
	Participants []models.Participant         `json:"participants"`
	Rounds       []models.Round               `json:"rounds"`
	Combined     []ParticipantWithRoundScores `json:"combined"`
}

// FetchGameState はゲームの参加者・ラウンド・スコアを全て取得して
// Combineで集計したスナップショットを返します。リアルタイム同期の
// 再取得でも、ゲーム詳細APIでもこの1本を使います。
func (s *Service) FetchGameState(ctx context.Context, gameID uint) (*GameState, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: game %d", ErrNotFound, gameID)
		}
		return nil, storeErr(err)
	}

	var participants []models.Participant
	if err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("total_points DESC, created_at ASC, id ASC").
		Find(&participants).Error; err != nil {
		return nil, storeErr(err)
	}

	var rounds []models.Round
	if err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("round_number ASC").
		Find(&rounds).Error; err != nil {
		return nil, storeErr(err)
	}

	var scores []models.Score
	if err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Find(&scores).Error; err != nil {
		return nil, storeErr(err)
	}

	return &GameState{
		Game:         game,
		Participants: participants,
		Rounds:       rounds,
		Combined:     Combine(participants, rounds, scores),
	}, nil
}

// AddParticipant はゲームに参加者を1人追加します。
// userIDは招待経由の場合のみ設定されます。
func (s *Service) AddParticipant(ctx context.Context, gameID uint, name string, userID *uint) (*models.Participant, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: participant name is required", ErrValidation)
	}

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: game %d", ErrNotFound, gameID)
		}
		return nil, storeErr(err)
	}

	participant := models.Participant{
		GameID: gameID,
		UserID: userID,
		Name:   name,
	}
	if err := s.db.WithContext(ctx).Create(&participant).Error; err != nil {
		return nil, storeErr(err)
	}

	s.publish(ctx, models.ParticipantsChannel(gameID), models.ChangeEvent{
		Table:  "participants",
		GameID: gameID,
		Action: models.ActionInsert,
	})
	return &participant, nil
}

// publish は変更イベントをRedisチャンネルに発行します。
// 通知はベストエフォートで、失敗しても書き込み自体は成立しています。
func (s *Service) publish(ctx context.Context, channel string, event models.ChangeEvent) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("変更イベントのエンコードに失敗", zap.Error(err))
		return
	}
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.logger.Error("変更イベントの発行に失敗",
			zap.String("channel", channel), zap.Error(err))
	}
}
