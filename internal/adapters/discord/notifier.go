package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
	pkgdiscord "bootcamp/pkg/discord"
)

// embedSender is the part of *discordgo.Session the notifier uses.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ output.Notifier = (*Notifier)(nil)

// Notifier posts lifecycle announcements to one Discord channel.
type Notifier struct {
	sender     embedSender
	channelID  string
	translator output.Translator
	locale     string
	handles    output.HandleFactory
}

// NewSession creates a REST-only Discord session for the bot token. No
// gateway connection is opened.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	log.Println("🤖 Discord announcements enabled.")
	return s, nil
}

// NewNotifier builds a Notifier. handles is used to look up the event of a
// submission and may be nil.
func NewNotifier(sender embedSender, channelID string, translator output.Translator, locale string, handles output.HandleFactory) *Notifier {
	return &Notifier{
		sender:     sender,
		channelID:  channelID,
		translator: translator,
		locale:     locale,
		handles:    handles,
	}
}

func (n *Notifier) SubmissionSubmitted(ctx context.Context, submission *entities.Submission) error {
	embed := pkgdiscord.BuildSubmissionEmbed(n.labels, submission, n.lookupEvent(ctx, submission.EventID))
	return n.send(ctx, embed)
}

func (n *Notifier) EventClosed(ctx context.Context, event *entities.Event) error {
	return n.send(ctx, pkgdiscord.BuildEventClosedEmbed(n.labels, event))
}

func (n *Notifier) labels(key string, data map[string]any) string {
	return n.translator.T(n.locale, key, data)
}

func (n *Notifier) send(ctx context.Context, embed *discordgo.MessageEmbed) error {
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		metrics.AnnouncementFailures.Inc()
		return fmt.Errorf("send announcement to channel %s: %w", n.channelID, err)
	}
	return nil
}

// lookupEvent is best effort; the announcement falls back to the event id.
func (n *Notifier) lookupEvent(ctx context.Context, id int64) *entities.Event {
	if n.handles == nil {
		return nil
	}
	h, err := n.handles.Acquire(ctx)
	if err != nil {
		return nil
	}
	defer h.Release()
	event, err := h.Events().FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return event
}
