package models

// PodcastEpisodeSummary links an episode to a paper summary it cites.
// Composite primary key: each (episode, summary) pair at most once.
type PodcastEpisodeSummary struct {
	PodcastEpisodeID uint `gorm:"column:episode_id;primaryKey" json:"episode_id"`
	ArxivSummaryID   uint `gorm:"column:summary_id;primaryKey" json:"summary_id"`
}

func (PodcastEpisodeSummary) TableName() string { return "podcast_episode_summary" }
