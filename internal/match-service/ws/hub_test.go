package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	return c
}

func send(t *testing.T, c *websocket.Conn, msg ClientMsg) ServerMsg {
	t.Helper()
	require.NoError(t, c.WriteJSON(msg))
	var ack ServerMsg
	require.NoError(t, c.ReadJSON(&ack))
	return ack
}

func allowAll(*http.Request) bool { return true }

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	h := NewHub(zap.NewNop(), allowAll)
	c := dial(t, h)

	ack := send(t, c, ClientMsg{Type: "subscribe", MatchID: "m-1"})
	assert.Equal(t, ServerMsg{Type: "subscribed", MatchID: "m-1"}, ack)

	h.Broadcast(match.Match{ID: "m-2", Status: match.StatusCompleted})
	h.Broadcast(match.Match{ID: "m-1", HomeScore: 3, AwayScore: 4, Status: match.StatusCompleted})

	var got struct {
		Type    string      `json:"type"`
		MatchID string      `json:"matchId"`
		Payload match.Match `json:"payload"`
	}
	require.NoError(t, c.ReadJSON(&got))
	assert.Equal(t, "match_update", got.Type)
	assert.Equal(t, "m-1", got.MatchID)
	assert.Equal(t, 3, got.Payload.HomeScore)
	assert.Equal(t, 4, got.Payload.AwayScore)
}

func TestHub_WildcardReceivesEveryMatch(t *testing.T) {
	h := NewHub(zap.NewNop(), allowAll)
	c := dial(t, h)

	send(t, c, ClientMsg{Type: "subscribe", MatchID: AllMatches})

	h.Broadcast(match.Match{ID: "m-9"})

	var got MatchUpdate
	require.NoError(t, c.ReadJSON(&got))
	assert.Equal(t, "m-9", got.MatchID)
}

func TestHub_ControlMessages(t *testing.T) {
	h := NewHub(zap.NewNop(), allowAll)
	c := dial(t, h)

	assert.Equal(t, "pong", send(t, c, ClientMsg{Type: "ping"}).Type)

	errMsg := send(t, c, ClientMsg{Type: "subscribe"})
	assert.Equal(t, "error", errMsg.Type)
	assert.Equal(t, "matchId required", errMsg.Error)

	assert.Equal(t, "error", send(t, c, ClientMsg{Type: "dance"}).Type)

	send(t, c, ClientMsg{Type: "subscribe", MatchID: "m-1"})
	ack := send(t, c, ClientMsg{Type: "unsubscribe", MatchID: "m-1"})
	assert.Equal(t, "unsubscribed", ack.Type)

	h.mu.RLock()
	_, still := h.subs["m-1"]
	h.mu.RUnlock()
	assert.False(t, still)
}
