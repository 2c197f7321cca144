package command

import "github.com/bwmarrin/discordgo"

type Middleware func(Command) Command

// WrappedCommand decorates a command's Run while forwarding the provider
// interfaces of the wrapped command.
type WrappedCommand struct {
	Command
	Wrap func(ctx interface{}) error
}

func (w *WrappedCommand) Run(ctx interface{}) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *WrappedCommand) Component(ctx *ComponentInteractionContext) error {
	if ch, ok := w.Command.(ComponentInteractionHandler); ok {
		return ch.Component(ctx)
	}
	return nil
}

func (w *WrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// Root unwraps middleware layers down to the concrete command.
func Root(cmd Command) Command {
	for {
		w, ok := cmd.(*WrappedCommand)
		if !ok {
			return cmd
		}
		cmd = w.Command
	}
}
