package scoring

import (
	"testing"

	"vennespill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participant(id uint, name string, total int) models.Participant {
	p := models.Participant{Name: name, TotalPoints: total}
	p.ID = id
	return p
}

func round(id uint, number int) models.Round {
	r := models.Round{RoundNumber: number}
	r.ID = id
	return r
}

func TestCombineDefaultsMissingScoresToZero(t *testing.T) {
	participants := []models.Participant{
		participant(1, "Anne", 7),
		participant(2, "Bjørn", 0),
	}
	rounds := []models.Round{round(10, 1), round(11, 2)}
	scores := []models.Score{
		{RoundID: 10, ParticipantID: 1, Points: 7},
	}

	combined := Combine(participants, rounds, scores)
	require.Len(t, combined, 2)

	// スコア行のあるラウンドはその値、無いラウンドは0
	anne := combined[0]
	assert.Equal(t, uint(1), anne.Participant.ID)
	assert.Equal(t, 7, anne.RoundScores[10])
	assert.Equal(t, 0, anne.RoundScores[11])

	bjorn := combined[1]
	assert.Equal(t, 0, bjorn.RoundScores[10])
	assert.Equal(t, 0, bjorn.RoundScores[11])
}

func TestCombineNeverFabricatesOrDropsRoundKeys(t *testing.T) {
	participants := []models.Participant{participant(1, "Anne", 3)}
	rounds := []models.Round{round(10, 1), round(11, 2), round(12, 3)}
	scores := []models.Score{
		{RoundID: 10, ParticipantID: 1, Points: 3},
		{RoundID: 99, ParticipantID: 1, Points: 50}, // 他ゲームのラウンドのスコアは無視される
	}

	combined := Combine(participants, rounds, scores)
	require.Len(t, combined, 1)
	require.Len(t, combined[0].RoundScores, 3)
	for _, r := range rounds {
		_, ok := combined[0].RoundScores[r.ID]
		assert.True(t, ok, "round %d must be present", r.ID)
	}
	_, ok := combined[0].RoundScores[99]
	assert.False(t, ok, "unknown round must not appear")
}

func TestCombineTotalMatchesRoundSum(t *testing.T) {
	participants := []models.Participant{participant(1, "Anne", 12)}
	rounds := []models.Round{round(10, 1), round(11, 2)}
	scores := []models.Score{
		{RoundID: 10, ParticipantID: 1, Points: 5},
		{RoundID: 11, ParticipantID: 1, Points: 7},
	}

	combined := Combine(participants, rounds, scores)
	require.Len(t, combined, 1)

	sum := 0
	for _, pts := range combined[0].RoundScores {
		sum += pts
	}
	assert.Equal(t, combined[0].TotalPoints, sum)
}

func TestCombineSortsByTotalDescending(t *testing.T) {
	participants := []models.Participant{
		participant(1, "Anne", 10),
		participant(2, "Bjørn", 30),
		participant(3, "Cato", 20),
	}

	combined := Combine(participants, nil, nil)
	require.Len(t, combined, 3)
	assert.Equal(t, []int{30, 20, 10}, []int{
		combined[0].TotalPoints, combined[1].TotalPoints, combined[2].TotalPoints,
	})
}

func TestCombineKeepsInputOrderOnTies(t *testing.T) {
	participants := []models.Participant{
		participant(1, "Anne", 20),
		participant(2, "Bjørn", 20),
		participant(3, "Cato", 10),
	}

	combined := Combine(participants, nil, nil)
	require.Len(t, combined, 3)
	assert.Equal(t, uint(1), combined[0].Participant.ID)
	assert.Equal(t, uint(2), combined[1].Participant.ID)
	assert.Equal(t, uint(3), combined[2].Participant.ID)
}
