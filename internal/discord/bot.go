package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"pokebase/internal/bot"
	"pokebase/internal/command"
	"pokebase/internal/config"
	"pokebase/internal/pokeapi"
	"pokebase/internal/storage"
	"pokebase/internal/tcg"
	"pokebase/internal/trainercard"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg      *discordgo.Session
	storage *storage.Storage
	cfg     *config.Config
	poke    *pokeapi.Client
	cards   *tcg.Client
	trainer *trainercard.Client
	mu      sync.RWMutex
}

// StartBot starts the Discord bot and blocks until ctx is done.
func StartBot(ctx context.Context, cfg *config.Config, storage *storage.Storage, poke *pokeapi.Client, cards *tcg.Client, trainer *trainercard.Client) error {
	b := &Bot{
		cfg:     cfg,
		storage: storage,
		poke:    poke,
		cards:   cards,
		trainer: trainer,
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

// run starts the Discord bot
func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents. Message content is
// needed so guessing rounds can read answers typed in the channel.
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	for _, g := range r.Guilds {
		if b.cfg.InitSlashCommands {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		} else {
			log.Println("[INFO] Registering slash commands skipped")
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onGuildCreate is called when a guild is created
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onInteractionCreate dispatches slash and component interactions to
// registered commands.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmdName := i.ApplicationCommandData().Name

		cmd, ok := command.GetCommand(cmdName)
		if !ok {
			log.Printf("[WARN] Unknown command: %s\n", cmdName)
			return
		}

		ctx := &command.SlashInteractionContext{
			Session: s,
			Event:   i,
			Storage: b.storage,
			Poke:    b.poke,
			TCG:     b.cards,
			Trainer: b.trainer,
			Cfg:     b.cfg,
		}
		if err := cmd.Run(ctx); err != nil {
			log.Println("[ERR] Error running slash command:", err)
			bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
				Description: fmt.Sprintf("Error running slash command: %v", err),
			})
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		var matched command.Command
		for _, cmd := range command.AllCommands() {
			if strings.HasPrefix(customID, cmd.Name()+"_") || strings.HasPrefix(customID, cmd.Name()+"|") {
				matched = cmd
				break
			}
		}
		if matched == nil {
			log.Printf("[WARN] No matching component for customID: %s\n", customID)
			return
		}

		compHandler, ok := matched.(command.ComponentInteractionHandler)
		if !ok {
			log.Printf("[WARN] Command %s does not handle components\n", matched.Name())
			return
		}

		ctx := &command.ComponentInteractionContext{
			Session: s,
			Event:   i,
			Storage: b.storage,
		}
		if err := compHandler.Component(ctx); err != nil {
			log.Printf("[ERR] Error running component command %s: %v\n", matched.Name(), err)
			bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
				Description: fmt.Sprintf("Error running component command: %v", err),
			})
		}

	default:
		log.Printf("[DEBUG] Unknown interaction type: %d\n", i.Type)
	}
}

// registerCommands registers slash commands, skipping unchanged ones via
// a per-guild hash cache.
func (b *Bot) registerCommands(guildID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	localHashes := loadGuildCommandHashes(guildID)

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, cmd := range command.AllCommands() {
		if def := normalizeDefinition(cmd); def != nil {
			wanted = append(wanted, def)
			wantedHashes[def.Name] = hashCommand(def)
		}
	}

	// Delete obsolete
	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
			}
			delete(localHashes, old.Name)
		}
	}

	// Create or update changed commands
	var changed []*discordgo.ApplicationCommand
	for _, cmd := range wanted {
		newHash := wantedHashes[cmd.Name]
		if localHashes[cmd.Name] != newHash {
			changed = append(changed, cmd)
		}
	}

	if len(changed) > 0 {
		log.Printf("[INFO] [%s] %d commands changed — updating with rate limit...", guildID, len(changed))
		registerCommandsWithRateLimit(b, guildID, changed)
		for _, c := range changed {
			localHashes[c.Name] = wantedHashes[c.Name]
		}
	}

	saveGuildCommandHashes(guildID, localHashes)
	return nil
}

// normalizeDefinition normalizes a command definition
func normalizeDefinition(cmd command.Command) *discordgo.ApplicationCommand {
	if slash, ok := cmd.(command.SlashProvider); ok {
		if def := slash.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			return def
		}
	}
	return nil
}

// registerCommandsWithRateLimit registers commands with a rate limit
func registerCommandsWithRateLimit(b *Bot, guildID string, cmds []*discordgo.ApplicationCommand) {
	rateLimit := time.Second / 40
	ticker := time.NewTicker(rateLimit)
	defer ticker.Stop()

	var wg sync.WaitGroup

	for _, job := range cmds {
		wg.Add(1)

		go func(cmd *discordgo.ApplicationCommand) {
			defer wg.Done()
			<-ticker.C

			_, err := b.dg.ApplicationCommandCreate(b.dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Printf("[ERR] Can't create command %s: %v", cmd.Name, err)
			} else {
				log.Printf("[DONE] Command created: %s", cmd.Name)
			}
		}(job)
	}

	wg.Wait()
}
