package models

import (
	"time"
)

// SocialShare records one share event. Both parent references are nullable:
// a share may point at an episode, an edition, both, or neither. The schema
// does not enforce that at least one is set.
type SocialShare struct {
	ID uint `gorm:"column:share_id;primaryKey" json:"share_id"`

	EpisodeID *uint           `gorm:"column:episode_id" json:"episode_id"`
	Episode   *PodcastEpisode `gorm:"foreignKey:EpisodeID" json:"-"`

	EditionID *uint              `gorm:"column:edition_id" json:"edition_id"`
	Edition   *NewsletterEdition `gorm:"foreignKey:EditionID" json:"-"`

	Platform  string    `gorm:"size:100" json:"platform"`
	ShareURL  string    `gorm:"size:255" json:"share_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SocialShare) TableName() string { return "social_shares" }
