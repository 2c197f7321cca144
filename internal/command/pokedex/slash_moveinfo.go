package pokedex

import (
	"context"
	"fmt"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"
	"pokebase/internal/pokeapi"

	"github.com/bwmarrin/discordgo"
)

type MoveInfoCommand struct{}

func (c *MoveInfoCommand) Name() string        { return "moveinfo" }
func (c *MoveInfoCommand) Description() string { return "Get various info about a Pokémon's move" }
func (c *MoveInfoCommand) Group() string       { return "pokedex" }
func (c *MoveInfoCommand) Category() string    { return "📖 Pokédex" }
func (c *MoveInfoCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *MoveInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "move",
				Description: "Move name or ID",
				Required:    true,
			},
		},
	}
}

func (c *MoveInfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	data, err := slash.Poke.Move(context.Background(), command.Option(event, "move"))
	if err != nil {
		return respondLookupError(session, event, err)
	}

	embed := &discordgo.MessageEmbed{
		Title:  titleWords(data.Name),
		URL:    bulbapediaURL(strings.ReplaceAll(titleWords(data.Name), " ", "_") + "_%28move%29"),
		Color:  bot.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{Text: "Powered by Poke API"},
	}

	if effect := pokeapi.EnglishEffect(data.EffectEntries); effect.Effect != "" || effect.ShortEffect != "" {
		embed.Description = fmt.Sprintf("**Move Effect:** \n\n%s\n%s", effect.ShortEffect, effect.Effect)
	}

	addField := func(name, value string) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: name, Value: value, Inline: true,
		})
	}

	if data.Generation.Name != "" {
		if parts := strings.SplitN(data.Generation.Name, "-", 2); len(parts) == 2 {
			addField("Introduced In", "Gen. **"+strings.ToUpper(parts[1])+"**")
		}
	}
	if data.Accuracy > 0 {
		addField("Accuracy", fmt.Sprintf("%d%%", data.Accuracy))
	}
	addField("Base Power", fmt.Sprintf("%d", data.Power))
	if data.EffectChance > 0 {
		addField("Effect Chance", fmt.Sprintf("%d%%", data.EffectChance))
	}
	addField("Power Points (PP)", fmt.Sprintf("%d", data.PP))
	if data.Type.Name != "" {
		addField("Move Type", titleWords(data.Type.Name))
	}
	if data.ContestType.Name != "" {
		addField("Contest Type", titleWords(data.ContestType.Name))
	}
	if data.DamageClass.Name != "" {
		addField("Damage Class", titleWords(data.DamageClass.Name))
	}

	if len(data.LearnedByPokemon) > 0 {
		var names []string
		for _, p := range data.LearnedByPokemon {
			names = append(names, titleWords(p.Name))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Learned by %d Pokémons", len(names)),
			Value: truncate(strings.Join(names, ", "), 500),
		})
	}

	_, err = bot.FollowupEmbed(session, event, embed)
	return err
}

func init() {
	command.RegisterCommand(
		&MoveInfoCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
