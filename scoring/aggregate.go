package scoring

import (
	"sort"

	"vennespill/models"
)

// ParticipantWithRoundScores は参加者1人分のラウンド別ポイントと
// 合計を保持します。RoundScoresのキーはラウンドID。
type ParticipantWithRoundScores struct {
	Participant models.Participant `json:"participant"`
	RoundScores map[uint]int       `json:"roundScores"`
	TotalPoints int                `json:"totalPoints"`
}

type scoreKey struct {
	roundID       uint
	participantID uint
}

// Combine は参加者・ラウンド・スコアの全集合から、参加者ごとの
// ラウンドID→ポイントのマッピングと合計を組み立てます。
// スコア行が無いラウンドは0点。純粋関数でI/Oは行いません。
// 結果はtotal_points降順の安定ソートで、同点は入力順を保ちます。
func Combine(participants []models.Participant, rounds []models.Round, scores []models.Score) []ParticipantWithRoundScores {
	pointsByKey := make(map[scoreKey]int, len(scores))
	for _, s := range scores {
		pointsByKey[scoreKey{s.RoundID, s.ParticipantID}] = s.Points
	}

	result := make([]ParticipantWithRoundScores, 0, len(participants))
	for _, p := range participants {
		roundScores := make(map[uint]int, len(rounds))
		for _, r := range rounds {
			// 該当スコアが無ければゼロ値の0がそのまま入る
			roundScores[r.ID] = pointsByKey[scoreKey{r.ID, p.ID}]
		}
		result = append(result, ParticipantWithRoundScores{
			Participant: p,
			RoundScores: roundScores,
			TotalPoints: p.TotalPoints,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalPoints > result[j].TotalPoints
	})
	return result
}
