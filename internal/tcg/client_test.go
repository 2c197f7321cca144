package tcg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokebase/internal/pokeapi"
)

func TestSearchCardsDecodesResults(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		if q := r.URL.Query().Get("q"); q != "name:pikachu" {
			t.Errorf("query = %q", q)
		}
		w.Write([]byte(`{"data":[{"name":"Pikachu","rarity":"Common","artist":"Mitsuhiro Arita",
			"set":{"name":"Base","releaseDate":"1999/01/09","images":{"logo":"https://x/logo.png"}},
			"images":{"large":"https://x/large.png"}}]}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "secret").WithBase(srv.URL)
	cards, err := c.SearchCards(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("SearchCards: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("api key header = %q", gotKey)
	}
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	card := cards[0]
	if card.Name != "Pikachu" || card.Set.Name != "Base" || card.Images.Large != "https://x/large.png" {
		t.Errorf("unexpected card: %+v", card)
	}
}

func TestSearchCardsAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-Api-Key"]; ok {
			t.Error("api key header sent without a key")
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "").WithBase(srv.URL)
	cards, err := c.SearchCards(context.Background(), "mew")
	if err != nil {
		t.Fatalf("SearchCards: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("cards = %d, want 0", len(cards))
	}
}

func TestSearchCardsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.Client(), "").WithBase(srv.URL)
	_, err := c.SearchCards(context.Background(), "missingno")
	if !errors.Is(err, pokeapi.ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
	if code := pokeapi.StatusCode(err); code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}
