package model

import (
	"errors"
	"fmt"
)

var (
	ErrNoTicker            = errors.New("no ticker found")
	ErrDataUnavailable     = errors.New("data unavailable")
	ErrInsufficientHistory = errors.New("insufficient history")
	ErrUnknownIntent       = errors.New("unknown intent")
	ErrInvalidHorizon      = errors.New("invalid horizon")
	ErrInvalidPrice        = errors.New("invalid price")
)

// DataError wraps a gateway failure for one ticker.
type DataError struct {
	Ticker string
	Op     string
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error [%s] %s: %v", e.Op, e.Ticker, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// Is makes every DataError match ErrDataUnavailable.
func (e *DataError) Is(target error) bool {
	return target == ErrDataUnavailable
}
