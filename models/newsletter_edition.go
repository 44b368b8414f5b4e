package models

import (
	"time"
)

type NewsletterEdition struct {
	ID           uint       `gorm:"column:edition_id;primaryKey" json:"edition_id"`
	NewsletterID uint       `gorm:"column:newsletter_id" json:"newsletter_id"`
	Newsletter   Newsletter `gorm:"foreignKey:NewsletterID" json:"-"`

	Date          time.Time  `gorm:"not null" json:"date"`
	PublishedDate *time.Time `json:"published_date"`
	Status        string     `gorm:"size:50;not null" json:"status"`
	Content       string     `gorm:"type:text" json:"content"`
	URL           string     `gorm:"size:255" json:"url"`

	// Optional tie-back to the podcast this edition was produced alongside.
	TiedPodcastID *uint    `gorm:"column:tied_podcast_id" json:"tied_podcast_id"`
	TiedPodcast   *Podcast `gorm:"foreignKey:TiedPodcastID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Summaries []ArxivSummary `gorm:"many2many:newsletter_edition_summary" json:"summaries,omitempty"`
}

func (NewsletterEdition) TableName() string { return "newsletter_editions" }
