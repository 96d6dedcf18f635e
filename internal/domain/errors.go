package domain

import "errors"

var (
	// ErrInvalidInput signals a ranking request that cannot be scored:
	// an empty task description or an empty candidate list.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRankerUnhealthy signals that the ranker self-check produced an unexpected ordering.
	ErrRankerUnhealthy = errors.New("ranker self-check failed")
)
