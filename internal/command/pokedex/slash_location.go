package pokedex

import (
	"context"
	"fmt"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/middleware"
	"pokebase/internal/pokeapi"
	"pokebase/pkg/util"

	"github.com/bwmarrin/discordgo"
)

// encounterWorkers bounds concurrent area lookups per command run.
const encounterWorkers = 4

type LocationCommand struct{}

func (c *LocationCommand) Name() string        { return "location" }
func (c *LocationCommand) Description() string { return "Show where a Pokémon can be encountered" }
func (c *LocationCommand) Group() string       { return "pokedex" }
func (c *LocationCommand) Category() string    { return "📖 Pokédex" }
func (c *LocationCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *LocationCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *LocationCommand) Run(ctx interface{}) error {
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

	data, err := poke.Pokemon(context.Background(), command.Option(event, "pokemon"))
	if err != nil {
		return respondLookupError(session, event, err)
	}
	if data.LocationAreaEncounters == "" {
		_, err := bot.Followup(session, event, "No location data found for said Pokémon.")
		return err
	}

	encounters, err := poke.Encounters(context.Background(), data.LocationAreaEncounters)
	if err != nil {
		return respondLookupError(session, event, err)
	}
	if len(encounters) == 0 {
		_, err := bot.Followup(session, event, "No location data found for said Pokémon.")
		return err
	}

	lines, err := util.ParallelMap(context.Background(), encounters, encounterWorkers,
		func(ctx context.Context, enc pokeapi.Encounter) (string, error) {
			area, err := poke.LocationArea(ctx, enc.LocationArea.URL)
			if err != nil {
				return "", err
			}
			loc, err := poke.Location(ctx, area.Location.URL)
			if err != nil {
				return "", err
			}

			var versions []string
			for _, v := range enc.VersionDetails {
				versions = append(versions, titleWords(v.Version.Name))
			}
			return fmt.Sprintf("**%s** (%s)",
				pokeapi.EnglishName(loc.Names),
				strings.Join(versions, "/")), nil
		})
	if err != nil {
		return respondLookupError(session, event, err)
	}

	var sb strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&sb, "`[%02d]` %s\n", i+1, line)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("#%s - %s", padID(data.ID), titleWords(data.Name)),
		URL:         bulbapediaURL(titleWords(data.Name) + "_%28Pok%C3%A9mon%29#Game_locations"),
		Description: sb.String(),
		Color:       bot.EmbedColor,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: poke.ArtworkURL(data.ID)},
	}
	_, err = bot.FollowupEmbed(session, event, embed)
	return err
}

func init() {
	command.RegisterCommand(
		&LocationCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
