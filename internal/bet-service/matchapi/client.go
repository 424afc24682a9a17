package matchapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/radieske/match-bet-platform/internal/bet-service/bet"
	"github.com/radieske/match-bet-platform/internal/bet-service/matchapi/dto"
)

const StatusCompleted = "COMPLETED"

// Match é a visão da partida de que o bet-service precisa
type Match struct {
	ID        string `json:"id"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Status    string `json:"status"`
}

func (m Match) Completed() bool { return m.Status == StatusCompleted }

// Client consulta o match-service por HTTP
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New cria o client com um único timeout por requisição (sem retries)
func New(base string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// GetMatch busca a partida pelo id.
// Qualquer falha (transporte, status != 2xx, payload inutilizável) é marcada como ErrMatchNotFound.
func (c *Client) GetMatch(ctx context.Context, id string) (Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/matches/"+url.PathEscape(id), nil)
	if err != nil {
		return Match{}, notFound(err, id)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return Match{}, notFound(err, id)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Match{}, notFound(errors.Newf("match-service http %d", res.StatusCode), id)
	}

	var out dto.MatchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Match{}, notFound(errors.Wrap(err, "decode match"), id)
	}
	if out.Status == "" {
		return Match{}, notFound(errors.New("match without status"), id)
	}

	if out.ID == "" {
		out.ID = id
	}
	return Match{
		ID:        out.ID,
		HomeTeam:  out.Home.Name,
		AwayTeam:  out.Away.Name,
		HomeScore: out.HomeScore,
		AwayScore: out.AwayScore,
		Status:    out.Status,
	}, nil
}

// notFound coloca ErrMatchNotFound na cadeia e guarda a falha original como erro secundário
func notFound(err error, id string) error {
	return errors.WithSecondaryError(errors.Wrapf(bet.ErrMatchNotFound, "get match %s: %v", id, err), err)
}
