// Package middleware provides decorators applied at command registration.
package middleware

import "pokebase/internal/command"

// WithGuildOnly wraps a command to enforce guild-only access
func WithGuildOnly() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*command.SlashInteractionContext); ok && v.Event.GuildID == "" {
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}
