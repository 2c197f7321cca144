package pokedex

import (
	"context"
	"fmt"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"

	"github.com/bwmarrin/discordgo"
)

type ItemCategoryCommand struct{}

func (c *ItemCategoryCommand) Name() string { return "itemcat" }
func (c *ItemCategoryCommand) Description() string {
	return "List the items in a given Pokémon item category"
}
func (c *ItemCategoryCommand) Group() string    { return "pokedex" }
func (c *ItemCategoryCommand) Category() string { return "📖 Pokédex" }
func (c *ItemCategoryCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *ItemCategoryCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "category",
				Description: "Item category name or ID",
				Required:    true,
			},
		},
	}
}

func (c *ItemCategoryCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	data, err := slash.Poke.ItemCategory(context.Background(), command.Option(event, "category"))
	if err != nil {
		return respondLookupError(session, event, err)
	}

	var sb strings.Builder
	for i, item := range data.Items {
		fmt.Fprintf(&sb, "**%d.** %s\n", i+1, titleWords(item.Name))
	}

	embed := &discordgo.MessageEmbed{
		Title:       titleWords(data.Name),
		Description: "__**List of items in this category:**__\n\n" + sb.String(),
		Color:       bot.EmbedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Powered by Poke API!"},
	}
	_, err = bot.FollowupEmbed(session, event, embed)
	return err
}

func init() {
	command.RegisterCommand(
		&ItemCategoryCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
