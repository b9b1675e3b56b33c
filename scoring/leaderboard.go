package scoring

import (
	"context"
	"sort"

	"vennespill/models"
)

// LeaderboardEntry はランキング表示の1行分です。
type LeaderboardEntry struct {
	ParticipantID uint   `json:"participantId"`
	Name          string `json:"name"`
	GameName      string `json:"gameName,omitempty"` // 全ゲーム横断表示でのみ設定
	TotalPoints   int    `json:"totalPoints"`
	Rank          int    `json:"rank"`
	First         bool   `json:"first"` // 1位マーカー（トロフィー表示用）
}

// BuildGameLeaderboard は参加者リストをtotal_points降順に並べ、
// 1始まりの順位を付けます。同点は入力の相対順のまま（安定ソート）。
func BuildGameLeaderboard(participants []models.Participant) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, LeaderboardEntry{
			ParticipantID: p.ID,
			Name:          p.Name,
			TotalPoints:   p.TotalPoints,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].First = i == 0
	}
	return entries
}

// mergeCrossGame はゲームごとの参加者をゲームの出現順に連結し、
// 全体をtotal_points降順の安定ソートで並べ直します。
// ゲーム内で先に出会った参加者が同点時に前へ来ます。
func mergeCrossGame(games []models.Game, participantsByGame map[uint][]models.Participant) []LeaderboardEntry {
	nameByGame := make(map[uint]string, len(games))
	all := make([]LeaderboardEntry, 0)
	for _, g := range games {
		nameByGame[g.ID] = g.GroupName
		for _, p := range participantsByGame[g.ID] {
			all = append(all, LeaderboardEntry{
				ParticipantID: p.ID,
				Name:          p.Name,
				GameName:      nameByGame[g.ID],
				TotalPoints:   p.TotalPoints,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalPoints > all[j].TotalPoints
	})
	for i := range all {
		all[i].Rank = i + 1
		all[i].First = i == 0
	}
	return all
}

// GameLeaderboard は1ゲーム分のランキングを返します。
func (s *Service) GameLeaderboard(ctx context.Context, gameID uint) ([]LeaderboardEntry, error) {
	state, err := s.FetchGameState(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return BuildGameLeaderboard(state.Participants), nil
}

// CrossGameLeaderboard はユーザーが所有する全ゲームの参加者を
// まとめたランキングを返します。参加者の取得はgame_id IN (...)の
// 1クエリで行います（ゲームごとのN+1クエリはしない）。
func (s *Service) CrossGameLeaderboard(ctx context.Context, userID uint) ([]LeaderboardEntry, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&games).Error; err != nil {
		return nil, storeErr(err)
	}
	if len(games) == 0 {
		return []LeaderboardEntry{}, nil
	}

	gameIDs := make([]uint, 0, len(games))
	for _, g := range games {
		gameIDs = append(gameIDs, g.ID)
	}

	var participants []models.Participant
	if err := s.db.WithContext(ctx).
		Where("game_id IN ?", gameIDs).
		Order("total_points DESC, created_at ASC, id ASC").
		Find(&participants).Error; err != nil {
		return nil, storeErr(err)
	}

	byGame := make(map[uint][]models.Participant, len(games))
	for _, p := range participants {
		byGame[p.GameID] = append(byGame[p.GameID], p)
	}
	return mergeCrossGame(games, byGame), nil
}
