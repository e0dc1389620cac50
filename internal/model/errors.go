package model

import (
	"errors"
	"fmt"
)

// ErrNoData is returned by aggregator functions when no delivery matches the
// requested combination. It is an expected outcome (a batsman who never faced
// a given bowler), not a programming error; callers check it with errors.Is.
var ErrNoData = errors.New("no deliveries match the query")

// InsufficientSampleError is returned when deliveries match but fall below
// the minimum-sample threshold. It carries both counts so a caller can decide
// whether to relax the filter.
type InsufficientSampleError struct {
	Balls    int
	MinBalls int
}

func (e *InsufficientSampleError) Error() string {
	return fmt.Sprintf("insufficient data: %d balls (minimum %d required)", e.Balls, e.MinBalls)
}
