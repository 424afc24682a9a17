package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
)

// AllMatches é a assinatura curinga: recebe atualizações de qualquer partida
const AllMatches = "*"

// Hub gerencia conexões WebSocket e assinaturas do feed de resultados
// subs: mapeia matchID para o conjunto de conexões inscritas
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	subs     map[string]map[*conn]struct{}
}

// conn serializa escritas: gorilla não aceita writers concorrentes na mesma conexão
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
	return c.ws.WriteJSON(v)
}

// NewHub cria uma instância de Hub com política customizada de origem (CORS)
func NewHub(log *zap.Logger, allowOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		subs:     make(map[string]map[*conn]struct{}),
	}
}

// HandleWS gerencia o ciclo de vida de uma conexão WebSocket
// Permite subscribe/unsubscribe em partidas e responde a pings
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	c := &conn{ws: wsConn}
	defer wsConn.Close()

	for {
		var msg ClientMsg
		if err := wsConn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Type {
		case "subscribe":
			if msg.MatchID == "" {
				_ = c.writeJSON(ServerMsg{Type: "error", Error: "matchId required"})
				continue
			}
			h.subscribe(msg.MatchID, c)
			_ = c.writeJSON(ServerMsg{Type: "subscribed", MatchID: msg.MatchID})
		case "unsubscribe":
			h.unsubscribe(msg.MatchID, c)
			_ = c.writeJSON(ServerMsg{Type: "unsubscribed", MatchID: msg.MatchID})
		case "ping":
			_ = c.writeJSON(ServerMsg{Type: "pong"})
		default:
			_ = c.writeJSON(ServerMsg{Type: "error", Error: "unknown message type"})
		}
	}

	// Remove a conexão de todas as assinaturas ao desconectar
	h.mu.Lock()
	for id, set := range h.subs {
		delete(set, c)
		if len(set) == 0 {
			delete(h.subs, id)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) subscribe(matchID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[matchID]; !ok {
		h.subs[matchID] = make(map[*conn]struct{})
	}
	h.subs[matchID][c] = struct{}{}
}

func (h *Hub) unsubscribe(matchID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[matchID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.subs, matchID)
		}
	}
}

// Broadcast envia a partida para os inscritos nela e para os inscritos em "*"
func (h *Hub) Broadcast(m match.Match) {
	h.mu.RLock()
	targets := make([]*conn, 0, len(h.subs[m.ID])+len(h.subs[AllMatches]))
	for c := range h.subs[m.ID] {
		targets = append(targets, c)
	}
	for c := range h.subs[AllMatches] {
		if _, dup := h.subs[m.ID][c]; !dup {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	update := MatchUpdate{Type: "match_update", MatchID: m.ID, Payload: m}
	for _, c := range targets {
		if err := c.writeJSON(update); err != nil {
			h.log.Warn("ws write failed", zap.String("match_id", m.ID), zap.Error(err))
		}
	}
}
