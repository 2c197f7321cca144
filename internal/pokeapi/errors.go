package pokeapi

import "errors"

var (
	// ErrDataUnavailable means the upstream answered with a non-success
	// status or timed out. Commands report it as "no results" and never
	// let it escape the command boundary.
	ErrDataUnavailable = errors.New("upstream data unavailable")

	// ErrMalformedData means an otherwise successful response was missing
	// an expected field. Callers degrade by omitting the field unless it
	// is essential to what they are producing.
	ErrMalformedData = errors.New("malformed upstream data")
)
