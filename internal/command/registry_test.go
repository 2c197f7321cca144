package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type stubCommand struct {
	name string
	runs int
}

func (s *stubCommand) Name() string             { return s.name }
func (s *stubCommand) Description() string      { return "stub" }
func (s *stubCommand) Group() string            { return "test" }
func (s *stubCommand) Category() string         { return "test" }
func (s *stubCommand) UserPermissions() []int64 { return nil }
func (s *stubCommand) Run(ctx interface{}) error {
	s.runs++
	return nil
}
func (s *stubCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: s.name}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	stub := &stubCommand{name: "stub-a"}
	RegisterCommand(stub)

	got, ok := GetCommand("stub-a")
	if !ok {
		t.Fatal("command not found after registration")
	}
	if got.Name() != "stub-a" {
		t.Errorf("Name = %q", got.Name())
	}
}

func TestMiddlewareOrderAndForwarding(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(c Command) Command {
			return &WrappedCommand{Command: c, Wrap: func(ctx interface{}) error {
				order = append(order, tag)
				return c.Run(ctx)
			}}
		}
	}

	stub := &stubCommand{name: "stub-b"}
	wrapped := ApplyMiddlewares(stub, mw("inner"), mw("outer"))
	if err := wrapped.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stub.runs != 1 {
		t.Errorf("runs = %d, want 1", stub.runs)
	}
	// Last-applied middleware runs first.
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("order = %v, want [outer inner]", order)
	}

	// SlashDefinition must survive wrapping.
	sp, ok := wrapped.(SlashProvider)
	if !ok {
		t.Fatal("wrapped command lost SlashProvider")
	}
	if def := sp.SlashDefinition(); def == nil || def.Name != "stub-b" {
		t.Errorf("SlashDefinition = %+v", def)
	}

	if Root(wrapped) != stub {
		t.Error("Root must unwrap to the concrete command")
	}
}
