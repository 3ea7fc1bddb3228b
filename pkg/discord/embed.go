package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bootcamp/internal/domain/entities"
)

const (
	submissionColor  = 0x5865F2
	eventClosedColor = 0xED4245
	// Discord rejects embed descriptions above 4096 characters.
	maxDescription = 4096
)

// Labels renders a localized label. It matches output.Translator.T with the
// locale already bound.
type Labels func(key string, data map[string]any) string

// BuildSubmissionEmbed announces a submission that just moved to Submitted.
// event may be nil when it could not be loaded.
func BuildSubmissionEmbed(l Labels, submission *entities.Submission, event *entities.Event) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       l("notify.submission_title", map[string]any{"Project": submission.ProjectName}),
		Description: truncate(submission.Description, maxDescription),
		Color:       submissionColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: l("notify.footer", map[string]any{"ID": submission.ID})},
		Timestamp:   FormatTimestamp(submission.CreatedAt),
	}
	if submission.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: submission.Thumbnail}
	}

	eventName := fmt.Sprintf("#%d", submission.EventID)
	if event != nil {
		eventName = fmt.Sprintf("%s (#%d)", event.Title, event.ID)
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: l("notify.field_event", nil), Value: eventName, Inline: true},
		&discordgo.MessageEmbedField{Name: l("notify.field_author", nil), Value: submission.SubmitBy, Inline: true},
	)
	embed.Fields = appendLink(embed.Fields, l("notify.field_repository", nil), submission.GitURL)
	embed.Fields = appendLink(embed.Fields, l("notify.field_video", nil), submission.VideoDemoURL)
	embed.Fields = appendLink(embed.Fields, l("notify.field_live_demo", nil), submission.LiveDemoURL)
	return embed
}

// BuildEventClosedEmbed announces an event that just moved to Closed.
func BuildEventClosedEmbed(l Labels, event *entities.Event) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: l("notify.event_closed_title", map[string]any{"Title": event.Title}),
		Color: eventClosedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: l("notify.field_kind", nil), Value: orDash(event.Type), Inline: true},
			{Name: l("notify.field_dates", nil), Value: FormatDateRange(event.StartDate, event.EndDate), Inline: true},
		},
	}
	if event.Logo != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: event.Logo}
	}
	return embed
}

func appendLink(fields []*discordgo.MessageEmbedField, name, url string) []*discordgo.MessageEmbedField {
	if strings.TrimSpace(url) == "" {
		return fields
	}
	return append(fields, &discordgo.MessageEmbedField{Name: name, Value: url})
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
