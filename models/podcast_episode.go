package models

import (
	"time"
)

// Episode statuses are free text in the schema; these are the values the
// production flow actually writes.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type PodcastEpisode struct {
	ID        uint    `gorm:"column:episode_id;primaryKey" json:"episode_id"`
	PodcastID uint    `gorm:"column:podcast_id" json:"podcast_id"` // nullable in DDL, always set by the app
	Podcast   Podcast `gorm:"foreignKey:PodcastID" json:"-"`

	Date          time.Time  `gorm:"not null" json:"date"` // production date
	PublishedDate *time.Time `json:"published_date"`
	Status        string     `gorm:"size:50;not null" json:"status"`

	Script       string `gorm:"type:text" json:"script"`
	ShowNotes    string `gorm:"type:text" json:"show_notes"`
	Themes       string `gorm:"type:text" json:"themes"`
	SocialPost   string `gorm:"type:text" json:"social_post"`
	URL          string `gorm:"size:255" json:"url"`
	AudioFileURL string `gorm:"size:255" json:"audio_file_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Summaries []ArxivSummary `gorm:"many2many:podcast_episode_summary" json:"summaries,omitempty"`
}

func (PodcastEpisode) TableName() string { return "podcast_episodes" }
