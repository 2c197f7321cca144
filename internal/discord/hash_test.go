package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestHashCommandStableAcrossOptionOrder(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name:        "pokedex",
		Description: "Look up a Pokémon",
		Options: []*discordgo.ApplicationCommandOption{
			{Name: "name", Description: "name", Type: discordgo.ApplicationCommandOptionString, Required: true},
			{Name: "shiny", Description: "shiny", Type: discordgo.ApplicationCommandOptionBoolean},
		},
	}
	b := &discordgo.ApplicationCommand{
		Name:        "pokedex",
		Description: "Look up a Pokémon",
		Options: []*discordgo.ApplicationCommandOption{
			{Name: "shiny", Description: "shiny", Type: discordgo.ApplicationCommandOptionBoolean},
			{Name: "name", Description: "name", Type: discordgo.ApplicationCommandOptionString, Required: true},
		},
	}

	if hashCommand(a) != hashCommand(b) {
		t.Error("hash changed with option ordering")
	}
}

func TestHashCommandDetectsChanges(t *testing.T) {
	base := &discordgo.ApplicationCommand{Name: "ability", Description: "Describe an ability"}
	changed := &discordgo.ApplicationCommand{Name: "ability", Description: "Describe an ability (updated)"}

	if hashCommand(base) == hashCommand(changed) {
		t.Error("hash did not change with description")
	}

	withChoices := &discordgo.ApplicationCommand{
		Name:        "ability",
		Description: "Describe an ability",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name: "generation", Description: "generation", Type: discordgo.ApplicationCommandOptionString,
				Choices: []*discordgo.ApplicationCommandOptionChoice{{Name: "Gen 1", Value: "gen1"}},
			},
		},
	}
	if hashCommand(base) == hashCommand(withChoices) {
		t.Error("hash did not change with added choices")
	}
}

func TestHashIgnoresRuntimeFields(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "item", Description: "Look up an item"}
	b := &discordgo.ApplicationCommand{ID: "12345", ApplicationID: "999", Version: "7", Name: "item", Description: "Look up an item"}

	if hashCommand(a) != hashCommand(b) {
		t.Error("runtime fields leaked into the hash")
	}
}
