package domain

import "errors"

var (
	// ErrTooFewLines indicates a witness search got fewer lines than its shape needs.
	ErrTooFewLines = errors.New("domain: too few lines for witness search")
	// ErrNoWitness indicates every candidate contained a parallel pair or had zero area.
	ErrNoWitness = errors.New("domain: no suitable witness found")
	// ErrNotGrid indicates the lines do not fall into exactly two slope groups.
	ErrNotGrid = errors.New("domain: lines do not form a two-slope grid")
)
