package middleware

import (
	"path/filepath"
	"testing"

	"pokebase/internal/command"
	"pokebase/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type countingCommand struct {
	runs int
}

func (c *countingCommand) Name() string             { return "pokedex" }
func (c *countingCommand) Description() string      { return "test command" }
func (c *countingCommand) Group() string            { return "pokedex" }
func (c *countingCommand) Category() string         { return "Test" }
func (c *countingCommand) UserPermissions() []int64 { return nil }
func (c *countingCommand) Run(ctx interface{}) error {
	c.runs++
	return nil
}

func slashEvent(guildID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   guildID,
			ChannelID: "chan1",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user1", Username: "ash"},
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "pokedex",
				Options: options,
			},
		},
	}
}

func TestGuildOnlySkipsDirectMessages(t *testing.T) {
	inner := &countingCommand{}
	wrapped := WithGuildOnly()(inner)

	if err := wrapped.Run(&command.SlashInteractionContext{Event: slashEvent("")}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if inner.runs != 0 {
		t.Error("command ran for a DM interaction")
	}

	if err := wrapped.Run(&command.SlashInteractionContext{Event: slashEvent("guild1")}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if inner.runs != 1 {
		t.Errorf("runs = %d, want 1", inner.runs)
	}
}

func TestCommandLoggerRecordsHistory(t *testing.T) {
	st, err := storage.New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	defer st.Close()

	inner := &countingCommand{}
	wrapped := WithCommandLogger()(inner)

	event := slashEvent("guild1", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "name",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: "pikachu",
	})
	if err := wrapped.Run(&command.SlashInteractionContext{Event: event, Storage: st}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if inner.runs != 1 {
		t.Fatalf("runs = %d, want 1", inner.runs)
	}

	history, err := st.GetCommandHistory("guild1")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	rec := history[0]
	if rec.Command != "pokedex" || rec.Param != "pikachu" || rec.Username != "ash" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestCommandLoggerSkipsDMs(t *testing.T) {
	st, err := storage.New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	defer st.Close()

	wrapped := WithCommandLogger()(&countingCommand{})
	if err := wrapped.Run(&command.SlashInteractionContext{Event: slashEvent(""), Storage: st}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	history, err := st.GetCommandHistory("")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("DM invocation was logged: %+v", history)
	}
}
