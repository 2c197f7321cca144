// Package trainercard renders trainer cards through the pokecharms.com
// card maker. The maker works in two steps: each pokémon's national index
// is resolved to a panel ID, then a form with all choices renders the
// card and returns it base64-encoded.
package trainercard

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pokebase/internal/pokeapi"
	"pokebase/pkg/retrylimit"
	"pokebase/pkg/util"

	"golang.org/x/net/html"
)

const (
	renderURL = "https://pokecharms.com/index.php?trainer-card-maker/render"
	panelURL  = "https://pokecharms.com/trainer-card-maker/pokemon-panels"

	maxBodySize = 8 << 20
	// maxNameLength is the longest trainer name the maker accepts.
	maxNameLength = 12
	// MaxPokemon is the panel capacity of a card.
	MaxPokemon = 6

	panelWorkers = 3
	// fallbackPanel renders as a substitute sprite when a pokémon has no
	// panel on pokecharms yet.
	fallbackPanel = "1"
)

// Styles maps style names to pokecharms background IDs.
var Styles = map[string]int{
	"default":   3,
	"black":     50,
	"collector": 96,
	"dp":        5,
	"purple":    43,
}

// Trainers maps trainer names to pokecharms character IDs.
var Trainers = map[string]int{
	"ash":     13,
	"red":     922,
	"ethan":   900,
	"lyra":    901,
	"brendan": 241,
	"may":     255,
	"lucas":   747,
	"dawn":    856,
}

// Badges maps league names to the badge IDs of that region.
var Badges = map[string][]int{
	"kanto":  {2, 3, 4, 5, 6, 7, 8, 9},
	"johto":  {10, 11, 12, 13, 14, 15, 16, 17},
	"hoenn":  {18, 19, 20, 21, 22, 23, 24, 25},
	"sinnoh": {26, 27, 28, 29, 30, 31, 32, 33},
	"unova":  {34, 35, 36, 37, 38, 39, 40, 41},
	"kalos":  {44, 45, 46, 47, 48, 49, 50, 51},
}

type Client struct {
	render string
	panels string
	http   *http.Client
}

func New(httpClient *http.Client) *Client {
	return &Client{
		render: renderURL,
		panels: panelURL,
		http:   httpClient,
	}
}

// WithBases overrides the endpoint URLs. Used in tests.
func (c *Client) WithBases(render, panels string) *Client {
	c.render = render
	c.panels = panels
	return c
}

// Request carries the validated card choices.
type Request struct {
	Name      string
	StyleID   int
	TrainerID int
	BadgeIDs  []int
	PokemonID []int
}

// Render produces the finished card as PNG bytes.
func (c *Client) Render(ctx context.Context, req Request) ([]byte, error) {
	panels, err := util.ParallelMap(ctx, req.PokemonID, panelWorkers, c.panelID)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	name := req.Name
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	form.Set("trainername", name)
	form.Set("background", strconv.Itoa(req.StyleID))
	form.Set("character", strconv.Itoa(req.TrainerID))
	form.Set("badges", "8")
	form.Set("badgesUsed", joinInts(req.BadgeIDs))
	form.Set("pokemon", strconv.Itoa(len(panels)))
	form.Set("pokemonUsed", strings.Join(panels, ","))
	form.Set("_xfResponseType", "json")

	var out struct {
		TrainerCard string `json:"trainerCard"`
	}
	if err := c.postForm(ctx, c.render, form, &out); err != nil {
		return nil, err
	}
	if out.TrainerCard == "" {
		return nil, fmt.Errorf("%w: empty trainer card response", pokeapi.ErrMalformedData)
	}

	// The maker wraps its base64 payload across lines.
	raw := strings.NewReplacer("\n", "", "\r", "").Replace(out.TrainerCard)
	img, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding trainer card image: %v", pokeapi.ErrMalformedData, err)
	}
	return img, nil
}

// panelID resolves a national index to the maker's internal panel ID by
// scraping the returned panel markup.
func (c *Client) panelID(ctx context.Context, pokemonID int) (string, error) {
	form := url.Values{}
	form.Set("number", strconv.Itoa(pokemonID))
	form.Set("_xfResponseType", "json")

	var out struct {
		TemplateHTML string `json:"templateHtml"`
	}
	if err := c.postForm(ctx, c.panels, form, &out); err != nil {
		return fallbackPanel, nil
	}

	if id := firstListItemID(out.TemplateHTML); id != "" {
		return id, nil
	}
	return fallbackPanel, nil
}

func (c *Client) postForm(ctx context.Context, u string, form url.Values, v any) error {
	var body []byte
	err := retrylimit.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
		return fmt.Errorf("%w: POST %s: %w", pokeapi.ErrDataUnavailable, u, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", pokeapi.ErrMalformedData, u, err)
	}
	return nil
}

// firstListItemID returns the data-id attribute of the first <li> in the
// panel markup, or "".
func firstListItemID(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var walk func(*html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "li" {
			for _, attr := range n.Attr {
				if attr.Key == "data-id" {
					return attr.Val
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if id := walk(child); id != "" {
				return id
			}
		}
		return ""
	}
	return walk(doc)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
