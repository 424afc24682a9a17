package topics

const (
	// Matches
	MatchCompleted = "match_completed"

	// Bets
	BetPlaced   = "bet_placed"
	BetResolved = "bet_resolved"
)
