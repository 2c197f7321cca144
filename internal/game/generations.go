package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument means the caller passed an unrecognized selector
	// (e.g. an unknown generation label). No network fetch has happened and
	// the command's cooldown must not be consumed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTimeout is the answer wait expiring. It is a normal terminal
	// outcome of a round, not a failure.
	ErrTimeout = errors.New("answer wait timed out")
)

// Generation is a closed national-index interval belonging to one release
// generation.
type Generation struct {
	Label string
	Low   int
	High  int
}

// Generations is the fixed catalog of recognized generation ranges.
var Generations = []Generation{
	{"gen1", 1, 151},
	{"gen2", 152, 251},
	{"gen3", 252, 386},
	{"gen4", 387, 493},
	{"gen5", 494, 649},
	{"gen6", 650, 721},
	{"gen7", 722, 809},
	{"gen8", 810, 898},
}

// MaxID is the highest national index in the catalog.
const MaxID = 898

// GenerationBounds resolves a generation label to its index range. The
// empty label means the full 1..MaxID range.
func GenerationBounds(label string) (low, high int, err error) {
	if label == "" {
		return 1, MaxID, nil
	}
	for _, g := range Generations {
		if g.Label == label {
			return g.Low, g.High, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: unknown generation %q (allowed: %s)",
		ErrInvalidArgument, label, strings.Join(GenerationLabels(), ", "))
}

// GenerationLabels returns the recognized labels in order.
func GenerationLabels() []string {
	labels := make([]string, len(Generations))
	for i, g := range Generations {
		labels[i] = g.Label
	}
	return labels
}

// GenerationOf returns the generation number (1-8) an index belongs to,
// or 0 for out-of-range values.
func GenerationOf(id int) int {
	for i, g := range Generations {
		if id >= g.Low && id <= g.High {
			return i + 1
		}
	}
	return 0
}
