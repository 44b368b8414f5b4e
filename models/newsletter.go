package models

import (
	"time"
)

type Newsletter struct {
	ID          uint      `gorm:"column:newsletter_id;primaryKey" json:"newsletter_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:255" json:"url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Editions []NewsletterEdition `gorm:"foreignKey:NewsletterID" json:"editions,omitempty"`
}

func (Newsletter) TableName() string { return "newsletters" }
