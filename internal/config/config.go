package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken      string        `env:"DISCORD_TOKEN,required"`
	StoragePath       string        `env:"STORAGE_PATH" envDefault:"datastore.json"`
	PokeAPIURL        string        `env:"POKEAPI_URL" envDefault:"https://pokeapi.co/api/v2"`
	PokeAssetsURL     string        `env:"POKE_ASSETS_URL" envDefault:"https://assets.pokemon.com/assets/cms2/img/pokedex/full"`
	TCGAPIKey         string        `env:"TCG_API_KEY"`
	InitSlashCommands bool          `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	GuessTimeout      time.Duration `env:"GUESS_TIMEOUT" envDefault:"15s"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
}

// New loads configuration from a .env file (if present) and the process
// environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
