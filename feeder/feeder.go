package feeder

import (
	"errors"
)

var (
	// ErrReadSequence error is carried by the last Feed when the source fails mid read
	ErrReadSequence = errors.New("failed to read sequence")
)

// Feed is one sequence of values taken from a source, Line is its position in the source
type Feed struct {
	Line   int
	Values []int
	Err    error
}

// Feeder delivers sequences to sort, the feed channel is closed once the source is exhausted
type Feeder interface {
	GetFeed() chan *Feed
	Stop()
}
