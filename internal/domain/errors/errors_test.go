package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsCodes(t *testing.T) {
	err := ErrInvalidWaypoints.WithDetails("waypoint 3: latitude 91 out of range")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "INVALID_WAYPOINTS", err.ErrorCode())
	assert.Equal(t, "waypoint 3: latitude 91 out of range", err.Details())
	assert.Empty(t, ErrInvalidWaypoints.Details())
}

func TestBaseError_WrapMessageIsDiscoverable(t *testing.T) {
	wrapped := ErrRouteNotFound.WrapMessage("load route abc")

	var appErr AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.True(t, stderrors.Is(wrapped, ErrRouteNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(stderrors.New("connection refused"), "insert route")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "insert route", err.Details())
}
