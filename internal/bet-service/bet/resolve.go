package bet

// ActualOutcome deriva o resultado real a partir do placar
func ActualOutcome(homeScore, awayScore int) Outcome {
	switch {
	case homeScore > awayScore:
		return HomeWin
	case homeScore < awayScore:
		return AwayWin
	default:
		return Draw
	}
}

// Resolve compara o palpite com o placar final.
// Qualquer palpite diferente do resultado real (inclusive vazio) é derrota.
func Resolve(homeScore, awayScore int, predicted Outcome) Status {
	if predicted == ActualOutcome(homeScore, awayScore) {
		return StatusResolvedWin
	}
	return StatusResolvedLoss
}
