package game

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math/rand"
	"strings"

	"pokebase/internal/pokeapi"
)

// DataSource is the slice of the PokeAPI client a round needs.
type DataSource interface {
	Artwork(ctx context.Context, id int) ([]byte, error)
	Species(ctx context.Context, id int) (*pokeapi.Species, error)
}

// NameSet is the accepted-answer set for one pokémon: the lowercased union
// of every localized name, with the English entry as the canonical display
// name.
type NameSet struct {
	Canonical string
	accepted  map[string]struct{}
}

// NewNameSet builds a NameSet from species names. When no English entry
// exists the fallback (the species slug, title-cased) becomes canonical so
// outcome messages always have something to show.
func NewNameSet(names []pokeapi.LocalizedName, fallback string) NameSet {
	set := NameSet{
		Canonical: pokeapi.EnglishName(names),
		accepted:  make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		set.accepted[strings.ToLower(n.Name)] = struct{}{}
	}
	if set.Canonical == "" {
		set.Canonical = titleCase(fallback)
		set.accepted[strings.ToLower(fallback)] = struct{}{}
	}
	return set
}

// Contains reports case-insensitive exact membership.
func (n NameSet) Contains(guess string) bool {
	_, ok := n.accepted[strings.ToLower(guess)]
	return ok
}

// Len returns the number of accepted spellings.
func (n NameSet) Len() int { return len(n.accepted) }

// Outcome is the result of verifying a guess.
type Outcome struct {
	Correct       bool
	CanonicalName string
}

// Verify checks a guess against the name set. Any localized spelling is
// accepted, not just the English one; the canonical name is returned
// either way for presentation.
func Verify(guess string, names NameSet) Outcome {
	return Outcome{
		Correct:       names.Contains(guess),
		CanonicalName: names.Canonical,
	}
}

// Round is the state of one guessing-game interaction. It lives in the
// scope of a single command invocation and is never shared.
type Round struct {
	ID          int
	HiddenImage []byte
	Names       NameSet

	src DataSource
}

// StartRound picks a pokémon (optionally constrained to a generation),
// fetches its artwork and name metadata and produces the masked image.
// An unknown generation label fails with ErrInvalidArgument before any
// network fetch.
func StartRound(ctx context.Context, src DataSource, generation string) (*Round, error) {
	low, high, err := GenerationBounds(generation)
	if err != nil {
		return nil, err
	}
	id := low + rand.Intn(high-low+1)
	return startRoundWithID(ctx, src, id)
}

func startRoundWithID(ctx context.Context, src DataSource, id int) (*Round, error) {
	hidden, err := renderCard(ctx, src, id, true)
	if err != nil {
		return nil, err
	}

	species, err := src.Species(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Round{
		ID:          id,
		HiddenImage: hidden,
		Names:       NewNameSet(species.Names, species.Name),
		src:         src,
	}, nil
}

// RevealImage produces the unmasked composite for the round's pokémon.
// The artwork fetch is served from the response cache after StartRound.
func (r *Round) RevealImage(ctx context.Context) ([]byte, error) {
	return renderCard(ctx, r.src, r.ID, false)
}

func renderCard(ctx context.Context, src DataSource, id int, mask bool) ([]byte, error) {
	raw, err := src.Artwork(ctx, id)
	if err != nil {
		return nil, err
	}
	sprite, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// A sprite that cannot be decoded is as unusable as one that
		// never arrived.
		return nil, fmt.Errorf("%w: decoding artwork for #%d: %v", pokeapi.ErrDataUnavailable, id, err)
	}
	template, err := Template()
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	return Composite(template, sprite, mask)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
