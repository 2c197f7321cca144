// Package tcg is a minimal client for the Pokémon TCG card search API.
package tcg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"pokebase/internal/pokeapi"
	"pokebase/pkg/retrylimit"
)

const maxBodySize = 4 << 20

type Card struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Artist string `json:"artist"`
	Set    struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"releaseDate"`
		Images      struct {
			Logo string `json:"logo"`
		} `json:"images"`
	} `json:"set"`
	Images struct {
		Large string `json:"large"`
	} `json:"images"`
}

type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

// New creates a client. apiKey may be empty; the API then serves
// rate-limited anonymous requests.
func New(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		base:   "https://api.pokemontcg.io/v2",
		apiKey: apiKey,
		http:   httpClient,
	}
}

// WithBase overrides the API host. Used in tests.
func (c *Client) WithBase(base string) *Client {
	c.base = base
	return c
}

// SearchCards finds cards whose name matches query.
func (c *Client) SearchCards(ctx context.Context, query string) ([]Card, error) {
	u := fmt.Sprintf("%s/cards?q=name:%s", c.base, url.QueryEscape(query))

	var body []byte
	err := retrylimit.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		if c.apiKey != "" {
			req.Header.Set("X-Api-Key", c.apiKey)
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
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", pokeapi.ErrDataUnavailable, u, err)
	}

	var out struct {
		Data []Card `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", pokeapi.ErrMalformedData, u, err)
	}
	return out.Data, nil
}
