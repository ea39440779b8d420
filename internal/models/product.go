package models

import (
	"strings"
	"time"
)

// SummaryLength is the number of characters of the body shown on list pages.
const SummaryLength = 100

type Product struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HunterID   uint      `gorm:"not null;index" json:"hunter_id"`
	Hunter     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hunter"`
	Title      string    `gorm:"not null" json:"title"`
	Body       string    `gorm:"type:text" json:"body"`
	URL        string    `gorm:"not null" json:"url"`
	IconPath   string    `gorm:"not null" json:"icon_path"`
	ImagePath  string    `gorm:"not null" json:"image_path"`
	VotesTotal int       `gorm:"not null;default:1" json:"votes_total"` // starts at 1, the hunter's own vote
	PubDate    time.Time `gorm:"not null" json:"pub_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Summary returns the body unchanged when it fits into SummaryLength
// characters, otherwise the first SummaryLength characters with trailing
// whitespace stripped and "..." appended. Counts runes, so a truncation may
// land mid-word.
func (p *Product) Summary() string {
	runes := []rune(p.Body)
	if len(runes) <= SummaryLength {
		return p.Body
	}
	return strings.TrimSpace(string(runes[:SummaryLength])) + "..."
}

// PubDatePretty formats the publication date for templates, e.g. "2 Jan 2006".
func (p *Product) PubDatePretty() string {
	return p.PubDate.Format("2 Jan 2006")
}
