package middleware

import (
	"log"
	"time"

	"pokebase/internal/command"
	"pokebase/internal/storage"
)

// WithCommandLogger wraps a command to record each invocation in the
// guild's command history.
func WithCommandLogger() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				err := cmd.Run(ctx)

				if v, ok := ctx.(*command.SlashInteractionContext); ok && v.Storage != nil && v.Event.GuildID != "" {
					user := command.EventUser(v.Event)
					rec := storage.CommandHistoryRecord{
						ChannelID: v.Event.ChannelID,
						UserID:    user.ID,
						Username:  user.Username,
						Command:   cmd.Name(),
						Param:     firstOptionValue(v),
						Datetime:  time.Now().UTC(),
					}
					if logErr := v.Storage.AppendCommandToHistory(v.Event.GuildID, rec); logErr != nil {
						log.Printf("[WARN] Failed to log command /%s: %v", cmd.Name(), logErr)
					}
				}
				return err
			},
		}
	}
}

func firstOptionValue(ctx *command.SlashInteractionContext) string {
	opts := ctx.Event.ApplicationCommandData().Options
	if len(opts) == 0 {
		return ""
	}
	if s, ok := opts[0].Value.(string); ok {
		return s
	}
	return ""
}
