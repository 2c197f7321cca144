package pokedex

import (
	"context"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"
	"pokebase/internal/pokeapi"

	"github.com/bwmarrin/discordgo"
)

type AbilityCommand struct{}

func (c *AbilityCommand) Name() string        { return "ability" }
func (c *AbilityCommand) Description() string { return "Get various info about a Pokémon ability" }
func (c *AbilityCommand) Group() string       { return "pokedex" }
func (c *AbilityCommand) Category() string    { return "📖 Pokédex" }
func (c *AbilityCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *AbilityCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "ability",
				Description: "Ability name or ID",
				Required:    true,
			},
		},
	}
}

func (c *AbilityCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	data, err := slash.Poke.Ability(context.Background(), command.Option(event, "ability"))
	if err != nil {
		return respondLookupError(session, event, err)
	}

	effect := pokeapi.EnglishEffect(data.EffectEntries)
	embed := &discordgo.MessageEmbed{
		Title:       titleWords(data.Name),
		URL:         bulbapediaURL(strings.ReplaceAll(titleWords(data.Name), " ", "_") + "_%28Ability%29"),
		Description: effect.Effect,
		Color:       bot.EmbedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Powered by Poke API"},
	}

	if data.Generation.Name != "" {
		if parts := strings.SplitN(data.Generation.Name, "-", 2); len(parts) == 2 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Introduced In", Value: "Gen. **" + strings.ToUpper(parts[1]) + "**", Inline: true,
			})
		}
	}
	if effect.ShortEffect != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Ability's Effect", Value: effect.ShortEffect,
		})
	}
	if len(data.Pokemon) > 0 {
		var names []string
		for _, p := range data.Pokemon {
			names = append(names, titleWords(p.Pokemon.Name))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Pokémons with " + titleWords(data.Name),
			Value: truncate(strings.Join(names, ", "), 1000),
		})
	}

	_, err = bot.FollowupEmbed(session, event, embed)
	return err
}

func init() {
	command.RegisterCommand(
		&AbilityCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
