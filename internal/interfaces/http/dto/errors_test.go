package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("listed codes map directly", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus("NOT_FOUND"))
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus("CONFIGURATION_NOT_FOUND"))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus("ALREADY_EXISTS"))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus("CONCURRENCY_CONFLICT"))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INSUFFICIENT_STOCK"))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("SERIAL_SHORTFALL"))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INVALID_STATE"))
	})

	t.Run("INVALID_ prefixed codes default to bad request", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_QUANTITY"))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_SPECIFICATION"))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_STATUS"))
	})

	t.Run("DUPLICATE_ prefixed codes default to conflict", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, GetHTTPStatus("DUPLICATE_CONFIGURATION"))
	})

	t.Run("unknown codes are internal errors", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ODD"))
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(""))
	})
}
