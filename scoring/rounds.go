package scoring

import (
	"context"
	"errors"
	"fmt"

	"vennespill/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRound はゲームに新しいラウンドを追加します。
// 参加者が0人のゲームでは採点できないため作成を拒否します。
// 採番は「既存ラウンド数+1」。ゲーム行をロックしてから数えるため、
// 同時作成でも番号は重複しません（さらにユニークインデックスが保険）。
func (s *Service) CreateRound(ctx context.Context, gameID uint, name string) (*models.Round, error) {
	var round models.Round
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: game %d", ErrNotFound, gameID)
			}
			return storeErr(err)
		}

		var participantCount int64
		if err := tx.Model(&models.Participant{}).
			Where("game_id = ?", gameID).
			Count(&participantCount).Error; err != nil {
			return storeErr(err)
		}
		if participantCount == 0 {
			return fmt.Errorf("%w: game %d has no participants", ErrPrecondition, gameID)
		}

		var roundCount int64
		if err := tx.Model(&models.Round{}).
			Where("game_id = ?", gameID).
			Count(&roundCount).Error; err != nil {
			return storeErr(err)
		}

		round = models.Round{
			GameID:      gameID,
			RoundNumber: int(roundCount) + 1,
			RoundName:   name,
		}
		if err := tx.Create(&round).Error; err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.RoundsChannel(gameID), models.ChangeEvent{
		Table:  "rounds",
		GameID: gameID,
		Action: models.ActionInsert,
	})
	return &round, nil
}

// RenameRound はラウンド名を無条件に上書きします。
// 提出された値をそのまま保存し、空文字の扱いは表示側に任せます。
func (s *Service) RenameRound(ctx context.Context, gameID, roundID uint, newName string) (*models.Round, error) {
	var round models.Round
	if err := s.db.WithContext(ctx).First(&round, roundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: round %d", ErrNotFound, roundID)
		}
		return nil, storeErr(err)
	}
	if round.GameID != gameID {
		return nil, fmt.Errorf("%w: round %d does not belong to game %d", ErrValidation, roundID, gameID)
	}

	if err := s.db.WithContext(ctx).Model(&round).
		Update("round_name", newName).Error; err != nil {
		return nil, storeErr(err)
	}

	s.publish(ctx, models.RoundsChannel(gameID), models.ChangeEvent{
		Table:  "rounds",
		GameID: gameID,
		Action: models.ActionUpdate,
	})
	return &round, nil
}

// SubmitRoundScores はラウンドのスコア一式を置き換えます。
// 削除と挿入は単一トランザクションで行い、途中の空状態が読み手に
// 見えることはありません。参加者のtotal_pointsも同一トランザクション
// 内で再計算するため、キャッシュと実合計が乖離することはありません。
// pointsに含まれない参加者は0点として記録されます。
func (s *Service) SubmitRoundScores(ctx context.Context, gameID, roundID uint, points map[uint]int) error {
	for participantID, pts := range points {
		if pts < 0 {
			return fmt.Errorf("%w: negative points %d for participant %d", ErrValidation, pts, participantID)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var round models.Round
		if err := tx.First(&round, roundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: round %d", ErrNotFound, roundID)
			}
			return storeErr(err)
		}
		if round.GameID != gameID {
			return fmt.Errorf("%w: round %d does not belong to game %d", ErrValidation, roundID, gameID)
		}

		var participants []models.Participant
		if err := tx.Where("game_id = ?", gameID).
			Order("created_at ASC, id ASC").
			Find(&participants).Error; err != nil {
			return storeErr(err)
		}

		known := make(map[uint]bool, len(participants))
		for _, p := range participants {
			known[p.ID] = true
		}
		for participantID := range points {
			if !known[participantID] {
				return fmt.Errorf("%w: participant %d is not in game %d", ErrValidation, participantID, gameID)
			}
		}

		// 既存スコアを全削除してから参加者ごとに1行ずつ挿入
		if err := tx.Where("round_id = ?", roundID).
			Delete(&models.Score{}).Error; err != nil {
			return storeErr(err)
		}
		newScores := make([]models.Score, 0, len(participants))
		for _, p := range participants {
			newScores = append(newScores, models.Score{
				GameID:        gameID,
				RoundID:       roundID,
				ParticipantID: p.ID,
				Points:        points[p.ID],
			})
		}
		if len(newScores) > 0 {
			if err := tx.Create(&newScores).Error; err != nil {
				return storeErr(err)
			}
		}

		// total_pointsキャッシュの再計算
		if err := tx.Exec(`
			UPDATE participants
			SET total_points = COALESCE(
				(SELECT SUM(s.points) FROM scores s WHERE s.participant_id = participants.id), 0)
			WHERE game_id = ?`, gameID).Error; err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, models.ScoresChannel(), models.ChangeEvent{
		Table:  "scores",
		GameID: gameID,
		Action: models.ActionReplace,
	})
	// 合計の更新も参加者の変更として通知
	s.publish(ctx, models.ParticipantsChannel(gameID), models.ChangeEvent{
		Table:  "participants",
		GameID: gameID,
		Action: models.ActionUpdate,
	})
	return nil
}
