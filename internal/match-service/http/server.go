package http

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/match-service/match"
	"github.com/radieske/match-bet-platform/internal/match-service/service"
	"github.com/radieske/match-bet-platform/internal/shared/httpx"
)

// Server expõe os endpoints REST do campeonato (times, partidas, resultados)
type Server struct {
	log  *zap.Logger
	svc  *service.Service
	feed http.HandlerFunc // WebSocket do feed de resultados
}

// NewServer instancia o servidor HTTP do match-service
func NewServer(log *zap.Logger, svc *service.Service, feed http.HandlerFunc) *Server {
	return &Server{log: log, svc: svc, feed: feed}
}

// Router retorna o roteador HTTP com as rotas da API
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httpx.RequestLogger(s.log))

	r.Post("/teams", s.registerTeam)
	r.Get("/teams", s.listTeams) // ?state=SP
	r.Get("/teams/{id}", s.getTeam)

	r.Post("/matches", s.registerMatch)
	r.Get("/matches", s.listMatches) // ?homeTeam=<identifier>
	r.Get("/matches/{id}", s.getMatch)
	r.Put("/matches/{id}/result", s.recordResult)

	if s.feed != nil {
		r.Get("/ws", s.feed)
	}
	return r
}

func (s *Server) registerTeam(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterTeamInput
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad json")
		return
	}
	t, err := s.svc.RegisterTeam(r.Context(), req)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (s *Server) listTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.ListTeams(r.Context(), r.URL.Query().Get("state"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teams)
}

func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (s *Server) registerMatch(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterMatchInput
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad json")
		return
	}
	m, err := s.svc.RegisterMatch(r.Context(), req)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, m)
}

func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.svc.ListMatches(r.Context(), r.URL.Query().Get("homeTeam"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, matches)
}

func (s *Server) getMatch(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (s *Server) recordResult(w http.ResponseWriter, r *http.Request) {
	var req service.RecordResultInput
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad json")
		return
	}
	m, err := s.svc.RecordResult(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

// writeErr traduz os erros de domínio para status HTTP
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
	case errors.Is(err, match.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, match.ErrNotFound), errors.Is(err, match.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrDuplicateTeam), errors.Is(err, match.ErrAlreadyCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
