package screens

import (
	"fmt"
	"net/http"
	"testing"

	"vennespill/scoring"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		statusForError(fmt.Errorf("%w: bad input", scoring.ErrValidation)))
	assert.Equal(t, http.StatusConflict,
		statusForError(fmt.Errorf("%w: no participants", scoring.ErrPrecondition)))
	assert.Equal(t, http.StatusNotFound,
		statusForError(fmt.Errorf("%w: game 1", scoring.ErrNotFound)))
	assert.Equal(t, http.StatusInternalServerError,
		statusForError(fmt.Errorf("db exploded")))
}
