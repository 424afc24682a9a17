package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "bet not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bet not found", body.Message)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.False(t, body.Timestamp.IsZero())
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		MatchID string `json:"matchId"`
	}

	r := httptest.NewRequest(http.MethodPost, "/bets", strings.NewReader(`{"matchId":"m-1","foo":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/bets", strings.NewReader(`{"matchId":"m-1"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "m-1", dst.MatchID)
}
