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

// movesPageLength keeps each page comfortably inside embed limits.
const movesPageLength = 400

type MovesCommand struct{}

func (c *MovesCommand) Name() string        { return "moves" }
func (c *MovesCommand) Description() string { return "List all possible moves a Pokémon has" }
func (c *MovesCommand) Group() string       { return "pokedex" }
func (c *MovesCommand) Category() string    { return "📖 Pokédex" }
func (c *MovesCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *MovesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "pokemon",
				Description: "Name or National Pokédex number",
				Required:    true,
			},
		},
	}
}

func (c *MovesCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	data, err := slash.Poke.Pokemon(context.Background(), command.Option(event, "pokemon"))
	if err != nil {
		return respondLookupError(session, event, err)
	}
	if len(data.Moves) == 0 {
		_, err := bot.Followup(session, event, "No moves found for this Pokémon.")
		return err
	}

	var sb strings.Builder
	for i, move := range data.Moves {
		fmt.Fprintf(&sb, "`[%02d]` **%s**\n", i+1, titleWords(move.Move.Name))
	}

	title := fmt.Sprintf("Moves for : %s (#%s)", titleWords(data.Name), padID(data.ID))
	var pages []*discordgo.MessageEmbed
	for _, chunk := range chunkLines(sb.String(), movesPageLength) {
		pages = append(pages, &discordgo.MessageEmbed{
			Title:       title,
			Description: chunk,
			Color:       bot.EmbedColor,
			Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: slash.Poke.ArtworkURL(data.ID)},
		})
	}

	return bot.Pages.FollowupPaged(session, event, c.Name(), pages)
}

func (c *MovesCommand) Component(ctx *command.ComponentInteractionContext) error {
	return bot.Pages.Flip(ctx.Session, ctx.Event)
}

func init() {
	command.RegisterCommand(
		&MovesCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
