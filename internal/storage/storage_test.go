package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndGetCommandHistory(t *testing.T) {
	s := newTestStorage(t)

	rec := CommandHistoryRecord{
		ChannelID: "chan1",
		UserID:    "user1",
		Username:  "ash",
		Command:   "whosthatpokemon",
		Param:     "gen1",
		Datetime:  time.Now().UTC(),
	}
	if err := s.AppendCommandToHistory("guild1", rec); err != nil {
		t.Fatalf("AppendCommandToHistory: %v", err)
	}

	history, err := s.GetCommandHistory("guild1")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].Command != "whosthatpokemon" || history[0].Param != "gen1" {
		t.Errorf("unexpected record: %+v", history[0])
	}
}

func TestCommandHistoryTrimmed(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+20; i++ {
		err := s.AppendCommandToHistory("guild1", CommandHistoryRecord{Command: "pokedex"})
		if err != nil {
			t.Fatalf("AppendCommandToHistory: %v", err)
		}
	}
	history, err := s.GetCommandHistory("guild1")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != commandHistoryLimit {
		t.Errorf("history length = %d, want cap %d", len(history), commandHistoryLimit)
	}
}

func TestHistoryIsolatedPerGuild(t *testing.T) {
	s := newTestStorage(t)

	if err := s.AppendCommandToHistory("guild1", CommandHistoryRecord{Command: "item"}); err != nil {
		t.Fatal(err)
	}
	history, err := s.GetCommandHistory("guild2")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("guild2 history length = %d, want 0", len(history))
	}
}
