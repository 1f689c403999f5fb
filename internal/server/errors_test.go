package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hhsaputraa/random-team-maker/internal/teams"
	"github.com/hhsaputraa/random-team-maker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "team_size", Message: "must be positive"}
	assert.Equal(t, "validation error: team_size - must be positive", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestValidationError_FromValidator(t *testing.T) {
	req := &types.BuildTeamsRequest{Members: []types.Member{{Name: "", Company: "Acme"}}}
	verr := req.Validate()
	require.Error(t, verr)

	err := validationError(verr)
	var ve *ErrValidation
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "BuildTeamsRequest.Members[0].Name", ve.Field)
	assert.Contains(t, ve.Message, "required")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "teams", Message: "required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid argument",
			err:      &teams.Error{Message: "team size must be positive, got 0", Cause: teams.ErrInvalidArgument},
			expected: http.StatusBadRequest,
		},
		{
			name:     "team not found",
			err:      &teams.Error{Message: "team 9", Cause: teams.ErrTeamNotFound},
			expected: http.StatusNotFound,
		},
		{
			name:     "member not found",
			err:      fmt.Errorf("move: %w", teams.ErrMemberNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "team not empty",
			err:      &teams.Error{Message: "team 2 has 3 members", Cause: teams.ErrTeamNotEmpty},
			expected: http.StatusConflict,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
