package dto

// TeamRef é o time como aparece dentro da partida no match-service.
type TeamRef struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// MatchResponse representa a resposta de GET /matches/{id} do match-service.
type MatchResponse struct {
	ID        string  `json:"id"`
	Home      TeamRef `json:"home"`
	Away      TeamRef `json:"away"`
	HomeScore int     `json:"homeScore"`
	AwayScore int     `json:"awayScore"`
	Status    string  `json:"status"`
}
