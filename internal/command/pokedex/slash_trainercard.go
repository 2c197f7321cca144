package pokedex

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"
	"pokebase/internal/trainercard"

	"github.com/bwmarrin/discordgo"
)

type TrainerCardCommand struct{}

func (c *TrainerCardCommand) Name() string { return "trainercard" }
func (c *TrainerCardCommand) Description() string {
	return "Generate a trainer card for a Pokémon trainer"
}
func (c *TrainerCardCommand) Group() string    { return "pokedex" }
func (c *TrainerCardCommand) Category() string { return "📖 Pokédex" }
func (c *TrainerCardCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *TrainerCardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Trainer name shown on the card (up to 12 characters)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "style",
				Description: "Card style",
				Required:    true,
				Choices:     keyChoices(trainercard.Styles),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "trainer",
				Description: "Trainer sprite",
				Required:    true,
				Choices:     keyChoices(trainercard.Trainers),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "badges",
				Description: "Badge league",
				Required:    true,
				Choices:     leagueChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "pokemons",
				Description: "Up to 6 Pokémon names or IDs, separated by spaces",
				Required:    true,
			},
		},
	}
}

func (c *TrainerCardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event

	pokemons := strings.Fields(command.Option(event, "pokemons"))
	if len(pokemons) == 0 || len(pokemons) > trainercard.MaxPokemon {
		return bot.RespondEphemeral(session, event,
			fmt.Sprintf("Provide between 1 and %d Pokémon names or IDs.", trainercard.MaxPokemon))
	}

	styleID, ok := trainercard.Styles[strings.ToLower(command.Option(event, "style"))]
	if !ok {
		return bot.RespondEphemeral(session, event, "Unknown card style.")
	}
	trainerID, ok := trainercard.Trainers[strings.ToLower(command.Option(event, "trainer"))]
	if !ok {
		return bot.RespondEphemeral(session, event, "Unknown trainer sprite.")
	}
	badgeIDs, ok := trainercard.Badges[strings.ToLower(command.Option(event, "badges"))]
	if !ok {
		return bot.RespondEphemeral(session, event, "Unknown badge league.")
	}

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	var ids []int
	for _, p := range pokemons {
		data, err := slash.Poke.Pokemon(context.Background(), p)
		if err != nil {
			return respondLookupError(session, event, err)
		}
		ids = append(ids, data.ID)
	}

	img, err := slash.Trainer.Render(context.Background(), trainercard.Request{
		Name:      command.Option(event, "name"),
		StyleID:   styleID,
		TrainerID: trainerID,
		BadgeIDs:  badgeIDs,
		PokemonID: ids,
	})
	if err != nil {
		_, ferr := bot.Followup(session, event, "No trainer card was generated. :(")
		if ferr != nil {
			return ferr
		}
		return nil
	}

	_, err = bot.FollowupFile(session, event, "trainer-card.png", bytes.NewReader(img))
	return err
}

func keyChoices(m map[string]int) []*discordgo.ApplicationCommandOptionChoice {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(keys))
	for i, k := range keys {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: titleWords(k), Value: k}
	}
	return choices
}

func leagueChoices() []*discordgo.ApplicationCommandOptionChoice {
	var keys []string
	for k := range trainercard.Badges {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(keys))
	for i, k := range keys {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: titleWords(k), Value: k}
	}
	return choices
}

func init() {
	command.RegisterCommand(
		&TrainerCardCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
