package models

import (
	"time"
)

type Podcast struct {
	ID          uint      `gorm:"column:podcast_id;primaryKey" json:"podcast_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:255" json:"url"`
	Platform    string    `gorm:"size:100" json:"platform"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Episodes []PodcastEpisode `gorm:"foreignKey:PodcastID" json:"episodes,omitempty"`
}

func (Podcast) TableName() string { return "podcasts" }
