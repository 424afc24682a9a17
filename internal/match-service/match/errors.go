package match

import "github.com/cockroachdb/errors"

var (
	ErrNotFound         = errors.New("match does not exist")
	ErrTeamNotFound     = errors.New("team not found")
	ErrDuplicateTeam    = errors.New("team identifier already exists")
	ErrAlreadyCompleted = errors.New("match already completed")
	ErrInvalid          = errors.New("invalid championship input")
)
