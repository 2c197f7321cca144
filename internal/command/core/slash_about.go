package core

import (
	"fmt"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"
	"pokebase/internal/version"

	"github.com/bwmarrin/discordgo"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Discover the origin of this bot" }
func (c *AboutCommand) Group() string       { return "core" }
func (c *AboutCommand) Category() string    { return "🕯️ Information" }
func (c *AboutCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s", version.AppName, version.AppVersion),
		Description: "A Pokédex in your server. Look up Pokémon, abilities, moves, " +
			"items and locations straight from PokéAPI, pull TCG cards, " +
			"and play Who's That Pokémon with your friends.",
		Color: bot.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Data", Value: "[PokéAPI](https://pokeapi.co) • [Pokémon TCG API](https://pokemontcg.io)", Inline: true},
		},
	}
	return bot.RespondEmbedEphemeral(context.Session, context.Event, embed)
}

func init() {
	command.RegisterCommand(
		&AboutCommand{},
		middleware.WithCommandLogger(),
	)
}
