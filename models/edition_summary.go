package models

// NewsletterEditionSummary links a newsletter edition to a paper summary it
// covers. Same shape as PodcastEpisodeSummary.
type NewsletterEditionSummary struct {
	NewsletterEditionID uint `gorm:"column:edition_id;primaryKey" json:"edition_id"`
	ArxivSummaryID      uint `gorm:"column:summary_id;primaryKey" json:"summary_id"`
}

func (NewsletterEditionSummary) TableName() string { return "newsletter_edition_summary" }
