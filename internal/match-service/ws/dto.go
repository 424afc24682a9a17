package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// MatchID: obrigatório para subscribe/unsubscribe ("*" assina todas as partidas)
type ClientMsg struct {
	Type    string `json:"type"`
	MatchID string `json:"matchId"`
}

// ServerMsg é a resposta de controle enviada ao cliente (ack, pong, erro)
type ServerMsg struct {
	Type    string `json:"type"` // subscribed | unsubscribed | pong | error
	MatchID string `json:"matchId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MatchUpdate representa uma atualização de partida enviada para clientes WebSocket
type MatchUpdate struct {
	Type    string `json:"type"` // sempre "match_update"
	MatchID string `json:"matchId"`
	Payload any    `json:"payload"`
}
