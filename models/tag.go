package models

import (
	"strings"
	"time"
)

// Tag titles are stored normalized (trimmed, lower-cased) and the unique index
// on title is the only guard against concurrent first-use of a new label.
type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TagSummary is the reduced tag shape used by the home listing.
type TagSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func (t *Tag) Summary() TagSummary {
	return TagSummary{ID: t.ID, Title: t.Title}
}

// NormalizeTagTitle maps "AI" and " ai " to the same uniqueness key.
func NormalizeTagTitle(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
