package trainercard

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFirstListItemID(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   string
	}{
		{"simple", `<ul><li data-id="4532">Pikachu</li></ul>`, "4532"},
		{"nested", `<div><ol><li class="x" data-id="77"><img/></li><li data-id="78"/></ol></div>`, "77"},
		{"missing attr", `<ul><li>Pikachu</li></ul>`, ""},
		{"empty", ``, ""},
	}
	for _, tc := range cases {
		if got := firstListItemID(tc.markup); got != tc.want {
			t.Errorf("%s: firstListItemID = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRenderPostsFormAndDecodesCard(t *testing.T) {
	cardPNG := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}

	panels := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostFormValue("number"); got != "25" {
			t.Errorf("panel number = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"templateHtml": `<ul><li data-id="4532"></li></ul>`,
		})
	}))
	defer panels.Close()

	var gotForm map[string]string
	render := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotForm = map[string]string{
			"trainername": r.PostFormValue("trainername"),
			"background":  r.PostFormValue("background"),
			"character":   r.PostFormValue("character"),
			"badgesUsed":  r.PostFormValue("badgesUsed"),
			"pokemon":     r.PostFormValue("pokemon"),
			"pokemonUsed": r.PostFormValue("pokemonUsed"),
		}
		json.NewEncoder(w).Encode(map[string]string{
			"trainerCard": base64.StdEncoding.EncodeToString(cardPNG),
		})
	}))
	defer render.Close()

	c := New(http.DefaultClient).WithBases(render.URL, panels.URL)
	img, err := c.Render(context.Background(), Request{
		Name:      "a-very-long-trainer-name",
		StyleID:   Styles["default"],
		TrainerID: Trainers["ash"],
		BadgeIDs:  Badges["kanto"],
		PokemonID: []int{25},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(img, cardPNG) {
		t.Error("decoded image differs from original")
	}

	if gotForm["trainername"] != "a-very-long-" {
		t.Errorf("trainer name not truncated: %q", gotForm["trainername"])
	}
	if gotForm["background"] != "3" || gotForm["character"] != "13" {
		t.Errorf("style/trainer IDs: %+v", gotForm)
	}
	if gotForm["badgesUsed"] != "2,3,4,5,6,7,8,9" {
		t.Errorf("badgesUsed = %q", gotForm["badgesUsed"])
	}
	if gotForm["pokemon"] != "1" || gotForm["pokemonUsed"] != "4532" {
		t.Errorf("pokemon fields: %+v", gotForm)
	}
}

func TestRenderFallsBackToDefaultPanel(t *testing.T) {
	panels := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer panels.Close()

	render := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if got := r.PostFormValue("pokemonUsed"); got != "1" {
			t.Errorf("pokemonUsed = %q, want fallback panel", got)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"trainerCard": base64.StdEncoding.EncodeToString([]byte("img")),
		})
	}))
	defer render.Close()

	c := New(http.DefaultClient).WithBases(render.URL, panels.URL)
	if _, err := c.Render(context.Background(), Request{
		Name: "ash", PokemonID: []int{9999},
	}); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderMultilineBase64(t *testing.T) {
	render := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"trainerCard": "aGVs\nbG8=",
		})
	}))
	defer render.Close()

	c := New(http.DefaultClient).WithBases(render.URL, render.URL)
	img, err := c.Render(context.Background(), Request{Name: "ash"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(img) != "hello" {
		t.Errorf("decoded = %q", img)
	}
}
