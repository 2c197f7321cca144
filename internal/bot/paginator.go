package bot

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// paginatorTTL is how long a page session stays flippable after its
// last interaction.
const paginatorTTL = 10 * time.Minute

type pageSession struct {
	pages    []*discordgo.MessageEmbed
	index    int
	lastUsed time.Time
}

// Paginator keeps embed page sessions for button-driven navigation.
// CustomIDs are prefixed with the owning command's name so the
// interaction dispatcher can route button presses back to it.
type Paginator struct {
	mu       sync.Mutex
	sessions map[string]*pageSession
	ttl      time.Duration
}

func NewPaginator(ttl time.Duration) *Paginator {
	return &Paginator{
		sessions: make(map[string]*pageSession),
		ttl:      ttl,
	}
}

// Pages is the shared paginator used by commands.
var Pages = NewPaginator(paginatorTTL)

// RespondPaged sends the first page as the interaction response with
// prev/next buttons. Single-page results go out without buttons.
func (p *Paginator) RespondPaged(s *discordgo.Session, i *discordgo.InteractionCreate, cmdName string, pages []*discordgo.MessageEmbed) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to send")
	}
	if len(pages) == 1 {
		return RespondEmbed(s, i, pages[0])
	}

	id := newSessionID()
	p.mu.Lock()
	p.prune()
	p.sessions[id] = &pageSession{pages: pages, lastUsed: time.Now()}
	p.mu.Unlock()

	decorate(pages, 0)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{pages[0]},
			Components: pageButtons(cmdName, id),
		},
	})
}

// FollowupPaged is RespondPaged for commands that already deferred.
func (p *Paginator) FollowupPaged(s *discordgo.Session, i *discordgo.InteractionCreate, cmdName string, pages []*discordgo.MessageEmbed) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to send")
	}
	if len(pages) == 1 {
		_, err := FollowupEmbed(s, i, pages[0])
		return err
	}

	id := newSessionID()
	p.mu.Lock()
	p.prune()
	p.sessions[id] = &pageSession{pages: pages, lastUsed: time.Now()}
	p.mu.Unlock()

	decorate(pages, 0)
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{pages[0]},
		Components: pageButtons(cmdName, id),
	})
	return err
}

// Flip handles a prev/next button press. Expired sessions turn into an
// ephemeral note instead of an error.
func (p *Paginator) Flip(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	parts := strings.Split(customID, "|")
	if len(parts) != 3 {
		return fmt.Errorf("malformed page customID: %s", customID)
	}
	direction, id := parts[1], parts[2]

	p.mu.Lock()
	sess, ok := p.sessions[id]
	if ok && time.Since(sess.lastUsed) > p.ttl {
		delete(p.sessions, id)
		ok = false
	}
	if !ok {
		p.mu.Unlock()
		return RespondEphemeral(s, i, "These pages have expired. Run the command again.")
	}
	sess.index = p.step(sess, direction)
	sess.lastUsed = time.Now()
	page := sess.pages[sess.index]
	p.mu.Unlock()

	prefix := strings.SplitN(customID, "_", 2)[0]
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{page},
			Components: pageButtons(prefix, id),
		},
	})
}

func (p *Paginator) step(sess *pageSession, direction string) int {
	n := len(sess.pages)
	switch direction {
	case "prev":
		return (sess.index - 1 + n) % n
	case "next":
		return (sess.index + 1) % n
	}
	return sess.index
}

// prune drops expired sessions. Caller holds p.mu.
func (p *Paginator) prune() {
	for id, sess := range p.sessions {
		if time.Since(sess.lastUsed) > p.ttl {
			delete(p.sessions, id)
		}
	}
}

func (p *Paginator) sessionCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}

// decorate stamps "Page x/y" footers on every page once.
func decorate(pages []*discordgo.MessageEmbed, _ int) {
	for idx, page := range pages {
		text := fmt.Sprintf("Page %d/%d", idx+1, len(pages))
		if page.Footer == nil {
			page.Footer = &discordgo.MessageEmbedFooter{Text: text}
		} else if !strings.Contains(page.Footer.Text, "Page ") {
			page.Footer.Text = text + " • " + page.Footer.Text
		}
	}
}

func pageButtons(cmdName, sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "◀",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s_page|prev|%s", cmdName, sessionID),
				},
				discordgo.Button{
					Label:    "▶",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s_page|next|%s", cmdName, sessionID),
				},
			},
		},
	}
}

func newSessionID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
