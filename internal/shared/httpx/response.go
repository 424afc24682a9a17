package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse é o corpo padrão de erro das APIs (mensagem, data e código HTTP)
type ErrorResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Code      int       `json:"code"`
}

// WriteJSON serializa a resposta em JSON e define o status HTTP
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError envia o ErrorResponse com o status informado
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{
		Message:   msg,
		Timestamp: time.Now().UTC(),
		Code:      status,
	})
}

// DecodeJSON lê o corpo da requisição rejeitando campos desconhecidos
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
