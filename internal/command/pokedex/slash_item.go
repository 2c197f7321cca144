package pokedex

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"
	"pokebase/internal/pokeapi"

	"github.com/bwmarrin/discordgo"
)

type ItemCommand struct{}

func (c *ItemCommand) Name() string        { return "item" }
func (c *ItemCommand) Description() string { return "Get various info about a Pokémon item" }
func (c *ItemCommand) Group() string       { return "pokedex" }
func (c *ItemCommand) Category() string    { return "📖 Pokédex" }
func (c *ItemCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *ItemCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name or ID",
				Required:    true,
			},
		},
	}
}

func (c *ItemCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event
	poke := slash.Poke

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	data, err := poke.Item(context.Background(), command.Option(event, "item"))
	if err != nil {
		return respondLookupError(session, event, err)
	}

	effect := pokeapi.EnglishEffect(data.EffectEntries)
	embed := &discordgo.MessageEmbed{
		Title: titleWords(data.Name),
		URL:   bulbapediaURL(strings.ReplaceAll(titleWords(data.Name), " ", "_")),
		Description: fmt.Sprintf("**Item effect:** %s\n\n**Summary:** %s",
			effect.Effect, effect.ShortEffect),
		Color:  bot.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{Text: "Powered by Poke API!"},
	}

	addField := func(name, value string, inline bool) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: name, Value: value, Inline: inline,
		})
	}

	addField("Cost", humanizeNumber(data.Cost), true)
	addField("Category", titleWords(data.Category.Name), true)

	if len(data.Attributes) > 0 {
		var attrs []string
		for _, a := range data.Attributes {
			attrs = append(attrs, titleWords(a.Name))
		}
		addField("Attributes", strings.Join(attrs, "\n"), true)
	}
	if data.FlingPower > 0 {
		addField("Fling Power", humanizeNumber(data.FlingPower), true)
	}
	if data.FlingEffect.URL != "" {
		var fling struct {
			EffectEntries []pokeapi.EffectEntry `json:"effect_entries"`
		}
		if err := poke.JSON(context.Background(), data.FlingEffect.URL, &fling); err != nil {
			log.Printf("[WARN] No fling effect data for %s: %v", data.Name, err)
		} else if fe := pokeapi.EnglishEffect(fling.EffectEntries); fe.Effect != "" {
			addField("Fling Effect", fe.Effect, false)
		}
	}
	if len(data.HeldByPokemon) > 0 {
		var names []string
		for _, h := range data.HeldByPokemon {
			names = append(names, titleWords(h.Pokemon.Name))
		}
		addField("Held by Pokémon(s)", truncate(strings.Join(names, ", "), 1000), false)
	}

	_, err = bot.FollowupEmbed(session, event, embed)
	return err
}

func init() {
	command.RegisterCommand(
		&ItemCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
