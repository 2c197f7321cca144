package core

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/config"
	"pokebase/internal/middleware"
	"pokebase/internal/version"

	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }
func (c *HelpCommand) Group() string       { return "core" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }
func (c *HelpCommand) UserPermissions() []int64 {
	return []int64{}
}

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}

	session := context.Session
	event := context.Event

	if err := bot.RespondDeferredEphemeral(session, event); err != nil {
		log.Println("[ERR] Failed to defer help interaction:", err)
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title:       version.AppName + " Help",
		Description: buildHelpByCategory(),
		Color:       bot.EmbedColor,
	}
	return bot.FollowupEmbedEphemeral(session, event, embed)
}

func buildHelpByCategory() string {
	all := command.AllCommands()

	categoryMap := make(map[string][]command.Command)
	for _, cmd := range all {
		cat := cmd.Category()
		categoryMap[cat] = append(categoryMap[cat], cmd)
	}

	var cats []string
	for cat := range categoryMap {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		return config.CategoryWeights[cats[i]] < config.CategoryWeights[cats[j]]
	})

	var sb strings.Builder
	for _, cat := range cats {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		cmds := categoryMap[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
		for _, cmd := range cmds {
			sb.WriteString(fmt.Sprintf("`%s` - %s\n", cmd.Name(), cmd.Description()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func init() {
	command.RegisterCommand(
		&HelpCommand{},
		middleware.WithGuildOnly(),
		middleware.WithCommandLogger(),
	)
}
