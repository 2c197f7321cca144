// Package guess implements the Who's That Pokémon guessing game.
package guess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/game"
	"pokebase/internal/middleware"

	"github.com/bwmarrin/discordgo"
)

const (
	attachmentName = "whosthatpokemon.png"
	// cooldownDuration throttles round starts per user per guild.
	cooldownDuration = 20 * time.Second

	correctColor = 0x00FF00
	wrongColor   = 0xFF0000
)

// channelLocks serializes rounds: one active round per channel.
var channelLocks = game.NewChannelLocks()

type WhosThatPokemonCommand struct{}

func (c *WhosThatPokemonCommand) Name() string { return "whosthatpokemon" }
func (c *WhosThatPokemonCommand) Description() string {
	return "Guess Who's that Pokémon within the time limit"
}
func (c *WhosThatPokemonCommand) Group() string    { return "guess" }
func (c *WhosThatPokemonCommand) Category() string { return "🎲 Gameplay" }
func (c *WhosThatPokemonCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *WhosThatPokemonCommand) SlashDefinition() *discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(game.Generations))
	for _, g := range game.Generations {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("Gen %d (#%d-#%d)", game.GenerationOf(g.Low), g.Low, g.High),
			Value: g.Label,
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "generation",
				Description: "Restrict the game to one generation (default: all)",
				Required:    false,
				Choices:     choices,
			},
		},
	}
}

func (c *WhosThatPokemonCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := slash.Session
	event := slash.Event
	storage := slash.Storage
	user := command.EventUser(event)
	channelID := event.ChannelID
	guildID := event.GuildID

	if until, err := storage.GetGuessCooldown(guildID, user.ID); err == nil && time.Now().Before(until) {
		return bot.RespondEphemeral(session, event,
			fmt.Sprintf("Not so fast! Wait **%s** before starting another round.",
				time.Until(until).Round(time.Second)))
	}

	generation := command.Option(event, "generation")

	if !channelLocks.TryAcquire(channelID) {
		return bot.RespondEphemeral(session, event, "A round is already in progress in this channel.")
	}
	defer channelLocks.Release(channelID)

	if err := bot.RespondDeferred(session, event); err != nil {
		return err
	}

	round, err := game.StartRound(context.Background(), slash.Poke, generation)
	if errors.Is(err, game.ErrInvalidArgument) {
		// Slash choices should prevent this; kept for direct API calls.
		// The cooldown has not been set yet, so a bad label costs nothing.
		_, ferr := bot.Followup(session, event,
			fmt.Sprintf("Only %s generations are allowed.",
				"`"+strings.Join(game.GenerationLabels(), "`, `")+"`"))
		return ferr
	}
	if err != nil {
		log.Println("[ERR] Failed to start round:", err)
		_, ferr := bot.Followup(session, event, "Could not fetch a Pokémon right now. Try again later.")
		return ferr
	}

	if err := storage.SetGuessCooldown(guildID, user.ID, time.Now().Add(cooldownDuration)); err != nil {
		log.Println("[WARN] Failed to set guess cooldown:", err)
	}

	timeout := slash.Cfg.GuessTimeout
	prompt, err := bot.FollowupEmbedWithFile(session, event, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("You have __**%d** seconds__ to answer. Who's that Pokémon?",
			int(timeout.Seconds())),
		Color: bot.EmbedColor,
		Image: &discordgo.MessageEmbedImage{URL: "attachment://" + attachmentName},
	}, attachmentName, bytes.NewReader(round.HiddenImage))
	if err != nil {
		return err
	}

	answer, err := game.AwaitAnswer(context.Background(), session, channelID, user.ID, timeout)
	if errors.Is(err, game.ErrTimeout) {
		bot.DeleteFollowup(session, event, prompt.ID)
		return bot.Message(session, channelID,
			fmt.Sprintf("Time over! **%s** did not guess the Pokémon within %d seconds.",
				user.Username, int(timeout.Seconds())))
	}
	if err != nil {
		bot.DeleteFollowup(session, event, prompt.ID)
		return err
	}

	outcome := game.Verify(answer, round.Names)

	revealed, err := round.RevealImage(context.Background())
	if err != nil {
		log.Println("[ERR] Failed to render reveal image:", err)
		bot.DeleteFollowup(session, event, prompt.ID)
		return bot.Message(session, channelID,
			fmt.Sprintf("It was ... **%s**", outcome.CanonicalName))
	}

	bot.DeleteFollowup(session, event, prompt.ID)

	result := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("It was ... **%s**", outcome.CanonicalName),
		Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + attachmentName},
		Footer:      &discordgo.MessageEmbedFooter{Text: "Requested by " + user.Username},
	}
	if outcome.Correct {
		result.Title = "🎉 POGGERS!! You guessed it right! 🎉"
		result.Color = correctColor
	} else {
		result.Title = "Your guess is very wrong! 😔"
		result.Color = wrongColor
	}

	return bot.MessageEmbedWithFile(session, channelID, result, attachmentName, bytes.NewReader(revealed))
}

func init() {
	command.RegisterCommand(
		&WhosThatPokemonCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
