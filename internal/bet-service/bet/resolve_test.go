package bet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActualOutcome(t *testing.T) {
	assert.Equal(t, HomeWin, ActualOutcome(2, 1))
	assert.Equal(t, AwayWin, ActualOutcome(0, 3))
	assert.Equal(t, Draw, ActualOutcome(1, 1))
	assert.Equal(t, Draw, ActualOutcome(0, 0))
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		home      int
		away      int
		predicted Outcome
		want      Status
	}{
		{"home win predicted", 2, 1, HomeWin, StatusResolvedWin},
		{"draw predicted away", 1, 1, AwayWin, StatusResolvedLoss},
		{"draw predicted", 1, 1, Draw, StatusResolvedWin},
		{"away win predicted", 3, 4, AwayWin, StatusResolvedWin},
		{"away win predicted home", 3, 4, HomeWin, StatusResolvedLoss},
		{"empty prediction", 0, 0, "", StatusResolvedLoss},
		{"unknown prediction", 5, 0, "HOME", StatusResolvedLoss},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.home, tc.away, tc.predicted))
		})
	}
}

// varre uma grade de placares e confere cada palpite contra a comparação direta
func TestResolve_AllScores(t *testing.T) {
	for h := 0; h <= 6; h++ {
		for a := 0; a <= 6; a++ {
			assert.Equal(t, h > a, Resolve(h, a, HomeWin) == StatusResolvedWin, "HOME_WIN %d x %d", h, a)
			assert.Equal(t, h < a, Resolve(h, a, AwayWin) == StatusResolvedWin, "AWAY_WIN %d x %d", h, a)
			assert.Equal(t, h == a, Resolve(h, a, Draw) == StatusResolvedWin, "DRAW %d x %d", h, a)
			// determinístico
			assert.Equal(t, Resolve(h, a, Draw), Resolve(h, a, Draw))
		}
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPlaced.Valid())
	assert.True(t, StatusResolvedLoss.Valid())
	assert.False(t, Status("CANCELLED").Valid())
	assert.False(t, Status("").Valid())
}
