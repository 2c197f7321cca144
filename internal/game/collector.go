package game

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// MessageSource is the part of a discordgo session the collector needs:
// registering an event handler and getting back its remove func.
type MessageSource interface {
	AddHandler(handler interface{}) func()
}

// AwaitAnswer waits for the first message authored by userID in channelID,
// up to timeout. It returns ErrTimeout when the wait expires; the caller
// must then end the round without invoking the verifier. The handler is
// always removed before returning.
func AwaitAnswer(ctx context.Context, src MessageSource, channelID, userID string, timeout time.Duration) (string, error) {
	answers := make(chan string, 1)

	remove := src.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.ID != userID || m.ChannelID != channelID {
			return
		}
		select {
		case answers <- strings.TrimSpace(m.Content):
		default:
		}
	})
	defer remove()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return "", ErrTimeout
	case answer := <-answers:
		return answer, nil
	}
}
