package discord

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"bootcamp/internal/domain/entities"
)

// keyLabels echoes the key and data so tests can assert what was asked for.
func keyLabels(key string, data map[string]any) string {
	if len(data) == 0 {
		return key
	}
	return fmt.Sprintf("%s%v", key, data)
}

func TestBuildSubmissionEmbed(t *testing.T) {
	t.Parallel()

	sub := &entities.Submission{
		ID:           7,
		EventID:      3,
		ProjectName:  "Proj",
		Description:  "desc",
		GitURL:       "https://git.example/proj",
		VideoDemoURL: "https://video.example/proj",
		SubmitBy:     "alice.near",
		CreatedAt:    time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
	embed := BuildSubmissionEmbed(keyLabels, sub, &entities.Event{ID: 3, Title: "NEAR Hack"})

	if embed.Title != "notify.submission_title"+fmt.Sprint(map[string]any{"Project": "Proj"}) {
		t.Errorf("title = %q", embed.Title)
	}
	if embed.Timestamp != "2024-03-01T10:00:00Z" || embed.Thumbnail != nil {
		t.Errorf("timestamp = %q, thumbnail = %v", embed.Timestamp, embed.Thumbnail)
	}
	var names []string
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	want := "notify.field_event,notify.field_author,notify.field_repository,notify.field_video"
	if strings.Join(names, ",") != want {
		t.Errorf("fields = %v", names)
	}
	if embed.Fields[0].Value != "NEAR Hack (#3)" || embed.Fields[1].Value != "alice.near" {
		t.Errorf("event/author = %q / %q", embed.Fields[0].Value, embed.Fields[1].Value)
	}
}

func TestBuildSubmissionEmbedWithoutEvent(t *testing.T) {
	t.Parallel()

	sub := &entities.Submission{ID: 1, EventID: 9, ProjectName: "P", Thumbnail: "t.png", LiveDemoURL: "https://demo"}
	embed := BuildSubmissionEmbed(keyLabels, sub, nil)
	if embed.Fields[0].Value != "#9" {
		t.Errorf("event = %q", embed.Fields[0].Value)
	}
	if embed.Thumbnail == nil || embed.Thumbnail.URL != "t.png" {
		t.Errorf("thumbnail = %v", embed.Thumbnail)
	}
	if last := embed.Fields[len(embed.Fields)-1]; last.Name != "notify.field_live_demo" {
		t.Errorf("last field = %q", last.Name)
	}
	if embed.Timestamp != "" {
		t.Errorf("timestamp = %q", embed.Timestamp)
	}
}

func TestBuildEventClosedEmbed(t *testing.T) {
	t.Parallel()

	embed := BuildEventClosedEmbed(keyLabels, &entities.Event{ID: 2, Title: "Bootcamp", StartDate: "2024-01-01", EndDate: "2024-01-05"})
	if embed.Fields[0].Value != "-" || embed.Fields[1].Value != "2024-01-01 → 2024-01-05" {
		t.Errorf("fields = %q, %q", embed.Fields[0].Value, embed.Fields[1].Value)
	}
}

func TestFormatDateRange(t *testing.T) {
	t.Parallel()

	tests := []struct{ start, end, want string }{
		{"", "", "-"},
		{"2024-01-01", "", "2024-01-01"},
		{"2024-01-01", "2024-01-01", "2024-01-01"},
		{"", "2024-01-05", "→ 2024-01-05"},
		{" 2024-01-01 ", "2024-01-05", "2024-01-01 → 2024-01-05"},
	}
	for _, tt := range tests {
		if got := FormatDateRange(tt.start, tt.end); got != tt.want {
			t.Errorf("FormatDateRange(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("héllo", 10); got != "héllo" {
		t.Errorf("short = %q", got)
	}
	if got := truncate("héllo", 3); got != "hé…" {
		t.Errorf("long = %q", got)
	}
}
