// Package pokeapi is a typed client for the PokeAPI reference data and
// the official artwork asset host. Responses are cached with a fixed TTL
// and fetched through an adaptive rate limiter.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pokebase/pkg/retrylimit"
)

const maxBodySize = 4 << 20

type Client struct {
	base      string
	assetBase string
	http      *http.Client
	cache     ResponseCache
	limiter   *retrylimit.AdaptiveLimiter
}

type Option func(*Client)

// WithCache replaces the default in-memory response cache.
func WithCache(c ResponseCache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithAssetBase overrides the artwork asset host.
func WithAssetBase(base string) Option {
	return func(cl *Client) { cl.assetBase = strings.TrimSuffix(base, "/") }
}

// New creates a client. httpClient is owned by the caller (acquired at
// process start, closed at process stop) and must not be nil.
func New(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	c := &Client{
		base:      strings.TrimSuffix(baseURL, "/"),
		assetBase: "https://assets.pokemon.com/assets/cms2/img/pokedex/full",
		http:      httpClient,
		cache:     NewMemoryCache(),
		limiter:   retrylimit.NewAdaptiveLimiter(5, 1, 20, 1, 0.5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pokemon looks up a pokémon by name or national index.
func (c *Client) Pokemon(ctx context.Context, query string) (*Pokemon, error) {
	var p Pokemon
	if err := c.getJSON(ctx, c.base+"/pokemon/"+slugify(query), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Species looks up species metadata by national index.
func (c *Client) Species(ctx context.Context, id int) (*Species, error) {
	var s Species
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon-species/%d", c.base, id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// EvolutionChain fetches the chain document at url (as linked from a
// species response).
func (c *Client) EvolutionChain(ctx context.Context, url string) (*EvolutionChain, error) {
	var e EvolutionChain
	if err := c.getJSON(ctx, url, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Ability looks up an ability by name or ID.
func (c *Client) Ability(ctx context.Context, query string) (*Ability, error) {
	var a Ability
	if err := c.getJSON(ctx, c.base+"/ability/"+slugify(query), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Move looks up a move by name or ID.
func (c *Client) Move(ctx context.Context, query string) (*Move, error) {
	var m Move
	q := strings.ReplaceAll(slugify(strings.ReplaceAll(query, ",", " ")), "'", "")
	if err := c.getJSON(ctx, c.base+"/move/"+q, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Item looks up an item by name or ID.
func (c *Client) Item(ctx context.Context, query string) (*Item, error) {
	var i Item
	if err := c.getJSON(ctx, c.base+"/item/"+slugify(query), &i); err != nil {
		return nil, err
	}
	return &i, nil
}

// ItemCategory looks up an item category by name or ID.
func (c *Client) ItemCategory(ctx context.Context, query string) (*ItemCategory, error) {
	var ic ItemCategory
	if err := c.getJSON(ctx, c.base+"/item-category/"+slugify(query), &ic); err != nil {
		return nil, err
	}
	return &ic, nil
}

// Encounters fetches a pokémon's location-area-encounters document at url.
func (c *Client) Encounters(ctx context.Context, url string) ([]Encounter, error) {
	var enc []Encounter
	if err := c.getJSON(ctx, url, &enc); err != nil {
		return nil, err
	}
	return enc, nil
}

// LocationArea fetches a location-area document at url.
func (c *Client) LocationArea(ctx context.Context, url string) (*LocationArea, error) {
	var la LocationArea
	if err := c.getJSON(ctx, url, &la); err != nil {
		return nil, err
	}
	return &la, nil
}

// Location fetches a location document at url.
func (c *Client) Location(ctx context.Context, url string) (*Location, error) {
	var l Location
	if err := c.getJSON(ctx, url, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// JSON fetches an arbitrary keyed JSON document into v. Used for fields
// that carry follow-up URLs (fling effects and the like).
func (c *Client) JSON(ctx context.Context, url string, v any) error {
	return c.getJSON(ctx, url, v)
}

// ArtworkURL returns the official artwork location for a national index.
// Embeds reference it directly instead of re-uploading the image.
func (c *Client) ArtworkURL(id int) string {
	return fmt.Sprintf("%s/%03d.png", c.assetBase, id)
}

// Artwork fetches the official artwork PNG for a national index. A missing
// sprite is essential to compositing, so any failure maps to
// ErrDataUnavailable rather than a degraded result.
func (c *Client) Artwork(ctx context.Context, id int) ([]byte, error) {
	body, err := c.fetch(ctx, c.ArtworkURL(id))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// getJSON resolves url to a decoded document, consulting the cache first.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrMalformedData, url, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if body, ok := c.cache.Get(url); ok {
		return body, nil
	}

	var body []byte
	err := retrylimit.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return &retrylimit.StatusError{Code: resp.StatusCode}
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		return err
	}, c.limiter)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrDataUnavailable, url, err)
	}

	c.cache.Put(url, body, DefaultTTL)
	return body, nil
}

// StatusCode extracts the upstream HTTP status from err, or 0 when err
// does not carry one. Commands use it for status-coded replies.
func StatusCode(err error) int {
	var se *retrylimit.StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

func slugify(q string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(q), " ", "-"))
}
