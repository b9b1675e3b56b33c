package scoring

import (
	"testing"

	"vennespill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGameLeaderboardOrdersDescending(t *testing.T) {
	participants := []models.Participant{
		participant(1, "Anne", 10),
		participant(2, "Bjørn", 30),
		participant(3, "Cato", 20),
	}

	entries := BuildGameLeaderboard(participants)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{30, 20, 10}, []int{
		entries[0].TotalPoints, entries[1].TotalPoints, entries[2].TotalPoints,
	})
	assert.Equal(t, []int{1, 2, 3}, []int{
		entries[0].Rank, entries[1].Rank, entries[2].Rank,
	})
}

func TestBuildGameLeaderboardStableOnTies(t *testing.T) {
	participants := []models.Participant{
		participant(1, "Anne", 20),
		participant(2, "Bjørn", 20),
		participant(3, "Cato", 10),
	}

	entries := BuildGameLeaderboard(participants)
	require.Len(t, entries, 3)
	// 同点の2人は元の相対順のまま
	assert.Equal(t, uint(1), entries[0].ParticipantID)
	assert.Equal(t, uint(2), entries[1].ParticipantID)
}

func TestBuildGameLeaderboardMarksFirstPlaceOnly(t *testing.T) {
	participants := []models.Participant{
		participant(1, "Anne", 20),
		participant(2, "Bjørn", 20),
	}

	entries := BuildGameLeaderboard(participants)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].First)
	assert.False(t, entries[1].First)
}

func TestBuildGameLeaderboardEmpty(t *testing.T) {
	entries := BuildGameLeaderboard(nil)
	assert.Empty(t, entries)
}

func TestMergeCrossGameCombinesAndTagsGames(t *testing.T) {
	gameA := models.Game{GroupName: "Fredagsgjengen"}
	gameA.ID = 1
	gameB := models.Game{GroupName: "Hytteturen"}
	gameB.ID = 2

	byGame := map[uint][]models.Participant{
		1: {participant(10, "A", 5)},
		2: {participant(11, "B", 15), participant(12, "C", 5)},
	}

	entries := mergeCrossGame([]models.Game{gameA, gameB}, byGame)
	require.Len(t, entries, 3)

	// B(15)が先頭、同点5のAとCは出会った順（Aのゲームが先）
	assert.Equal(t, uint(11), entries[0].ParticipantID)
	assert.Equal(t, uint(10), entries[1].ParticipantID)
	assert.Equal(t, uint(12), entries[2].ParticipantID)

	assert.Equal(t, "Hytteturen", entries[0].GameName)
	assert.Equal(t, "Fredagsgjengen", entries[1].GameName)
	assert.True(t, entries[0].First)
	assert.Equal(t, 3, entries[2].Rank)
}
