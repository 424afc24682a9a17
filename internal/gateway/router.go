package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/radieske/match-bet-platform/internal/shared/httpx"
)

// Targets são as URLs base dos serviços atrás do gateway
type Targets struct {
	MatchURL string
	BetURL   string
}

func rp(log *zap.Logger, to string) (*httputil.ReverseProxy, error) {
	u, err := url.Parse(to)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("invalid upstream url %q", to)
	}
	p := httputil.NewSingleHostReverseProxy(u)
	p.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn("upstream failed", zap.String("upstream", u.Host), zap.String("path", r.URL.Path), zap.Error(err))
		httpx.WriteError(w, http.StatusBadGateway, "upstream unavailable")
	}
	return p, nil
}

// NewRouter monta o roteamento /api/* -> serviços, com CORS
//
//	/api/teams, /api/matches, /api/ws -> match-service
//	/api/bets                         -> bet-service
func NewRouter(log *zap.Logger, t Targets) (http.Handler, error) {
	match, err := rp(log, t.MatchURL)
	if err != nil {
		return nil, errors.Wrap(err, "match-service")
	}
	bet, err := rp(log, t.BetURL)
	if err != nil {
		return nil, errors.Wrap(err, "bet-service")
	}

	mux := http.NewServeMux()
	for _, prefix := range []string{"/api/teams", "/api/matches"} {
		mux.Handle(prefix, http.StripPrefix("/api", match))
		mux.Handle(prefix+"/", http.StripPrefix("/api", match))
	}
	mux.Handle("/api/ws", http.StripPrefix("/api", match))

	mux.Handle("/api/bets", http.StripPrefix("/api", bet))
	mux.Handle("/api/bets/", http.StripPrefix("/api", bet))

	return withCORS(mux), nil
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}
