package models

import (
	"time"
)

// ArxivSummary is one ingested paper abstract. unique_identifier is the OAI
// identifier (e.g. "oai:arXiv.org:2301.00001"). The original DDL declares no
// unique constraint on it; dedup is handled by the ingest upsert instead, so
// the column is deliberately left without a unique index here.
type ArxivSummary struct {
	ID               uint      `gorm:"column:summary_id;primaryKey" json:"summary_id"`
	UniqueIdentifier string    `gorm:"size:255;not null" json:"unique_identifier"`
	Title            string    `gorm:"type:text;not null" json:"title"`
	Summary          string    `gorm:"type:text;not null" json:"summary"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ArxivSummary) TableName() string { return "arxiv_summaries" }
