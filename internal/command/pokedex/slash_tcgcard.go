package pokedex

import (
	"context"
	"fmt"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"

	"github.com/bwmarrin/discordgo"
)

type TCGCardCommand struct{}

func (c *TCGCardCommand) Name() string        { return "tcgcard" }
func (c *TCGCardCommand) Description() string { return "Fetch Pokémon Trading Card Game cards" }
func (c *TCGCardCommand) Group() string       { return "pokedex" }
func (c *TCGCardCommand) Category() string    { return "📖 Pokédex" }
func (c *TCGCardCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *TCGCardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Card name to search for",
				Required:    true,
			},
		},
	}
}

func (c *TCGCardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	cards, err := slash.TCG.SearchCards(context.Background(), command.Option(event, "query"))
	if err != nil {
		return respondLookupError(session, event, err)
	}
	if len(cards) == 0 {
		_, err := bot.Followup(session, event, "No results.")
		return err
	}

	var pages []*discordgo.MessageEmbed
	for _, card := range cards {
		pages = append(pages, &discordgo.MessageEmbed{
			Title:       card.Name,
			Description: "**Rarity:** " + card.Rarity,
			Color:       bot.EmbedColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Artist:", Value: card.Artist, Inline: true},
				{Name: "Belongs to Set:", Value: card.Set.Name},
				{Name: "Set Release Date:", Value: card.Set.ReleaseDate, Inline: true},
			},
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: card.Set.Images.Logo},
			Image:     &discordgo.MessageEmbedImage{URL: card.Images.Large},
			Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d results | Powered by Pokémon TCG API!", len(cards))},
		})
	}

	return bot.Pages.FollowupPaged(session, event, c.Name(), pages)
}

func (c *TCGCardCommand) Component(ctx *command.ComponentInteractionContext) error {
	return bot.Pages.Flip(ctx.Session, ctx.Event)
}

func init() {
	command.RegisterCommand(
		&TCGCardCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
