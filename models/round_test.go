package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDisplayNameFallsBackToNumber(t *testing.T) {
	round := Round{RoundNumber: 3}
	assert.Equal(t, "Runde 3", round.DisplayName())

	round.RoundName = "Quiz"
	assert.Equal(t, "Quiz", round.DisplayName())
}
