package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const speciesJSON = `{
	"id": 25,
	"name": "pikachu",
	"gender_rate": 4,
	"base_happiness": 50,
	"capture_rate": 190,
	"names": [
		{"name": "ピカチュウ", "language": {"name": "ja"}},
		{"name": "Pikachu", "language": {"name": "en"}}
	],
	"genera": [{"genus": "Mouse Pokémon", "language": {"name": "en"}}],
	"evolution_chain": {"url": "https://example.invalid/evolution-chain/10/"}
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.Client(), srv.URL, WithAssetBase(srv.URL+"/art"))
	return c, srv
}

func TestSpecies(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon-species/25" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(speciesJSON))
	}))

	sp, err := c.Species(context.Background(), 25)
	if err != nil {
		t.Fatalf("Species: %v", err)
	}
	if sp.Name != "pikachu" || sp.GenderRate != 4 {
		t.Errorf("unexpected species: %+v", sp)
	}
	if got := EnglishName(sp.Names); got != "Pikachu" {
		t.Errorf("EnglishName = %q, want Pikachu", got)
	}
}

func TestFetchCaches(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(speciesJSON))
	}))

	for i := 0; i < 3; i++ {
		if _, err := c.Species(context.Background(), 25); err != nil {
			t.Fatalf("Species: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("upstream hits = %d, want 1 (subsequent calls served from cache)", got)
	}
}

func TestFetchNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())

	_, err := c.Pokemon(context.Background(), "missingno")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
	if got := StatusCode(err); got != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", got)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := c.Pokemon(context.Background(), "pikachu")
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("err = %v, want ErrMalformedData", err)
	}
}

func TestArtwork(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/art/025.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))

	body, err := c.Artwork(context.Background(), 25)
	if err != nil {
		t.Fatalf("Artwork: %v", err)
	}
	if len(body) != 4 {
		t.Errorf("body length = %d, want 4", len(body))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Mr Mime", "mr-mime"},
		{"  Pikachu ", "pikachu"},
		{"CHARIZARD", "charizard"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type fakeCache struct {
	m map[string][]byte
}

func (f *fakeCache) Get(key string) ([]byte, bool) {
	b, ok := f.m[key]
	return b, ok
}
func (f *fakeCache) Put(key string, body []byte, _ time.Duration) { f.m[key] = body }

func TestInjectedCacheIsConsulted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be hit on cache hit")
	}))
	defer srv.Close()

	fc := &fakeCache{m: map[string][]byte{
		srv.URL + "/pokemon-species/25": []byte(speciesJSON),
	}}
	c := New(srv.Client(), srv.URL, WithCache(fc))

	sp, err := c.Species(context.Background(), 25)
	if err != nil {
		t.Fatalf("Species: %v", err)
	}
	if sp.Name != "pikachu" {
		t.Errorf("Name = %q", sp.Name)
	}
}
