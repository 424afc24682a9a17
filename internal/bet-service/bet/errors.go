package bet

import "github.com/cockroachdb/errors"

var (
	ErrNotFound       = errors.New("bet not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchNotPlayed = errors.New("match not played yet")
	ErrMatchClosed    = errors.New("match closed for betting")
	ErrInvalid        = errors.New("invalid bet input")
)
