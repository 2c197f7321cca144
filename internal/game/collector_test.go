package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// fakeMessages mimics the discordgo handler registration used by the
// collector, letting tests feed messages directly.
type fakeMessages struct {
	mu       sync.Mutex
	handlers map[int]func(*discordgo.Session, *discordgo.MessageCreate)
	next     int
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{handlers: make(map[int]func(*discordgo.Session, *discordgo.MessageCreate))}
}

func (f *fakeMessages) AddHandler(handler interface{}) func() {
	fn, ok := handler.(func(*discordgo.Session, *discordgo.MessageCreate))
	if !ok {
		panic("unexpected handler type")
	}
	f.mu.Lock()
	id := f.next
	f.next++
	f.handlers[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.handlers, id)
		f.mu.Unlock()
	}
}

func (f *fakeMessages) send(channelID, authorID, content string) {
	f.mu.Lock()
	hs := make([]func(*discordgo.Session, *discordgo.MessageCreate), 0, len(f.handlers))
	for _, h := range f.handlers {
		hs = append(hs, h)
	}
	f.mu.Unlock()
	m := &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: channelID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
	}}
	for _, h := range hs {
		h(nil, m)
	}
}

func (f *fakeMessages) handlerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}

func TestAwaitAnswerReceives(t *testing.T) {
	src := newFakeMessages()
	done := make(chan struct{})
	var answer string
	var err error

	go func() {
		defer close(done)
		answer, err = AwaitAnswer(context.Background(), src, "chan1", "user1", time.Second)
	}()

	// Wait for the handler to be registered, then feed messages.
	for i := 0; i < 100 && src.handlerCount() == 0; i++ {
		time.Sleep(time.Millisecond)
	}
	src.send("chan2", "user1", "wrong channel")
	src.send("chan1", "user2", "wrong author")
	src.send("chan1", "user1", "  Pikachu ")
	<-done

	if err != nil {
		t.Fatalf("AwaitAnswer: %v", err)
	}
	if answer != "Pikachu" {
		t.Errorf("answer = %q, want trimmed Pikachu", answer)
	}
	if src.handlerCount() != 0 {
		t.Error("handler must be removed after return")
	}
}

func TestAwaitAnswerTimeout(t *testing.T) {
	src := newFakeMessages()
	_, err := AwaitAnswer(context.Background(), src, "chan1", "user1", 10*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if src.handlerCount() != 0 {
		t.Error("handler must be removed after timeout")
	}
}

func TestAwaitAnswerContextCancel(t *testing.T) {
	src := newFakeMessages()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := AwaitAnswer(ctx, src, "chan1", "user1", time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
