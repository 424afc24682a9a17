package http

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
	"github.com/radieske/match-bet-platform/internal/bet-service/dto"
	"github.com/radieske/match-bet-platform/internal/bet-service/service"
	"github.com/radieske/match-bet-platform/internal/shared/httpx"
)

type Server struct {
	log *zap.Logger
	svc *service.Service
}

func NewServer(log *zap.Logger, svc *service.Service) *Server {
	return &Server{log: log, svc: svc}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httpx.RequestLogger(s.log))

	r.Post("/bets", s.placeBet)
	r.Get("/bets", s.listBets) // ?status=PLACED&matchId=...
	r.Get("/bets/{id}", s.getBet)
	return r
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceBetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad json")
		return
	}

	b, err := s.svc.PlaceBet(r.Context(), service.PlaceBetInput{
		MatchID:   req.MatchID,
		Predicted: req.Predicted,
		Amount:    req.Amount,
	})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, dto.FromBet(b))
}

func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bets, err := s.svc.ListBets(r.Context(), bet.Filter{
		Status:  bet.Status(q.Get("status")),
		MatchID: q.Get("matchId"),
	})
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dto.FromBets(bets))
}

// getBet consulta a aposta e tenta resolvê-la (polling): se a partida
// ainda não terminou responde 409 e a aposta continua PLACED
func (s *Server) getBet(w http.ResponseWriter, r *http.Request) {
	b, err := s.svc.ResolveBet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dto.FromBet(b))
}

func (s *Server) writeErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
		httpx.WriteError(w, status, "internal error")
		return
	}
	httpx.WriteError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bet.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, bet.ErrNotFound), errors.Is(err, bet.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, bet.ErrMatchNotPlayed), errors.Is(err, bet.ErrMatchClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
