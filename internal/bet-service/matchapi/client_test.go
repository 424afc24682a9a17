package matchapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
)

func TestClient_GetMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/matches/m-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m-1","home":{"id":"t1","name":"Time A"},"away":{"id":"t2","name":"Time B"},"homeScore":2,"awayScore":1,"status":"COMPLETED"}`))
	}))
	defer srv.Close()

	m, err := New(srv.URL, time.Second).GetMatch(t.Context(), "m-1")
	require.NoError(t, err)

	assert.Equal(t, Match{ID: "m-1", HomeTeam: "Time A", AwayTeam: "Time B", HomeScore: 2, AwayScore: 1, Status: "COMPLETED"}, m)
	assert.True(t, m.Completed())
}

func TestClient_FailuresAreMatchNotFound(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"500", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{`)) }},
		{"empty status", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"id":"m-1"}`)) }},
		{"slow", func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"id":"m-1","status":"COMPLETED"}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := New(srv.URL, 50*time.Millisecond).GetMatch(t.Context(), "m-1")
			assert.ErrorIs(t, err, bet.ErrMatchNotFound)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).GetMatch(t.Context(), "m-1")
	assert.ErrorIs(t, err, bet.ErrMatchNotFound)
}
