// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "pokebase/internal/command/core"
	_ "pokebase/internal/command/guess"
	_ "pokebase/internal/command/pokedex"

	"pokebase/internal/config"
	"pokebase/internal/discord"
	"pokebase/internal/pokeapi"
	"pokebase/internal/storage"
	"pokebase/internal/tcg"
	"pokebase/internal/trainercard"
	v "pokebase/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	go storage.RunCooldownCleaner(ctx, store)

	// One HTTP client for every upstream. Acquired here, released on exit.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	defer httpClient.CloseIdleConnections()

	poke := pokeapi.New(httpClient, cfg.PokeAPIURL, pokeapi.WithAssetBase(cfg.PokeAssetsURL))
	cards := tcg.New(httpClient, cfg.TCGAPIKey)
	trainer := trainercard.New(httpClient)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store, poke, cards, trainer); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
