package failure_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotelhills/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"bad request", failure.BadRequest(errors.New("price is required")), http.StatusBadRequest, "price is required"},
		{"bad request from string", failure.BadRequestFromString("nights must be positive"), http.StatusBadRequest, "nights must be positive"},
		{"not found", failure.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"conflict", failure.Conflict("room number already exists"), http.StatusConflict, "room number already exists"},
		{"internal", failure.InternalError(errors.New("connection reset")), http.StatusInternalServerError, "connection reset"},
		{"empty update", failure.EmptyUpdateRequest, http.StatusBadRequest, "update request cannot be empty"},
		{"still referenced", failure.StillReferenced, http.StatusConflict, "record is still referenced by other records"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestUnwrapKeepsTheCause(t *testing.T) {
	err := failure.InternalError(fmt.Errorf("select bill: %w", sql.ErrConnDone))

	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestGetCode(t *testing.T) {
	t.Run("plain errors are unexpected", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
	})

	t.Run("wrapped failures keep their code", func(t *testing.T) {
		err := fmt.Errorf("generate bill: %w", failure.NotFound("booking not found"))

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("sentinels match with errors.Is", func(t *testing.T) {
		err := fmt.Errorf("update room: %w", failure.EmptyUpdateRequest)

		assert.ErrorIs(t, err, failure.EmptyUpdateRequest)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, failure.IsNotFound(nil))
	assert.False(t, failure.IsNotFound(failure.Conflict("taken")))
	assert.True(t, failure.IsNotFound(failure.NotFound("room not found")))
}
