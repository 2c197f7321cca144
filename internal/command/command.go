// Package command defines the command interface, the runtime contexts the
// Discord adapter passes to commands, and the registry commands add
// themselves to from their init functions.
package command

import (
	"pokebase/internal/config"
	"pokebase/internal/pokeapi"
	"pokebase/internal/storage"
	"pokebase/internal/tcg"
	"pokebase/internal/trainercard"

	"github.com/bwmarrin/discordgo"
)

type Command interface {
	Name() string
	Description() string
	Group() string
	Category() string
	UserPermissions() []int64
	Run(ctx interface{}) error
}

// Providers — how a command is registered with Discord.

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

type ComponentInteractionHandler interface {
	Component(*ComponentInteractionContext) error
}

// Contexts — what the runtime passes when executing.

type SlashInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Poke    *pokeapi.Client
	TCG     *tcg.Client
	Trainer *trainercard.Client
	Cfg     *config.Config
}

type ComponentInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
}

// Option returns the named string option of a slash invocation, or ""
// when absent.
func Option(e *discordgo.InteractionCreate, name string) string {
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// EventUser resolves the invoking user from a guild or DM interaction.
func EventUser(e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		return e.User
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}
