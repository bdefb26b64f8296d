package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmorales-dev/portfolio-backend/errs"
)

func TestWriteError_ApiErr(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errs.NewBadRequestError("unknown category"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unknown category", body["error"])
	assert.Equal(t, "error", body["status"])
}

func TestWriteError_UnexpectedError(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Equal(t, "connection reset", body["details"])
}
