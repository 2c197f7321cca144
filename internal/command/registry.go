package command

import "sort"

var registry = map[string]Command{}

// RegisterCommand adds a command to the registry after wrapping it with
// the given middlewares. Called from command package init functions.
func RegisterCommand(cmd Command, mws ...Middleware) {
	registry[cmd.Name()] = ApplyMiddlewares(cmd, mws...)
}

// GetCommand looks up a command by name.
func GetCommand(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// AllCommands returns every registered command, sorted by name.
func AllCommands() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
