package services

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/models"
	"github.com/techcraftingai/content-backend/utils"
	"github.com/techcraftingai/content-backend/ws"
)

// IngestResult is the outcome of one ingest job across all harvested dates.
type IngestResult struct {
	Dates   []string `json:"dates"`
	Pages   int      `json:"pages"`
	Parsed  int      `json:"parsed"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
}

// RunArxivIngest harvests the given from-dates, stages the raw XML, parses
// the summaries and upserts them. Progress is pushed over the job's
// websocket channel.
func RunArxivIngest(db *gorm.DB, jobID string, fromDates []string) (*IngestResult, error) {
	baseURL := os.Getenv("ARXIV_BASE_URL")
	summarySet := os.Getenv("ARXIV_SUMMARY_SET")

	result := &IngestResult{Dates: fromDates}

	for i, fromDate := range fromDates {
		progress := float64(i) / float64(len(fromDates))
		ws.SendIngestStatus(jobID, "fetching "+fromDate, progress, "")

		pages, err := FetchDailySummaries(baseURL, fromDate, summarySet)
		if err != nil {
			ws.SendIngestStatus(jobID, "failed", progress, err.Error())
			return result, fmt.Errorf("fetch for %s failed: %w", fromDate, err)
		}
		result.Pages += len(pages)

		for n, page := range pages {
			// Staging is an audit copy; ingest keeps going if the bucket
			// is unreachable.
			name := fmt.Sprintf("%s-%d-%s", fromDate, n, uuid.New().String())
			if _, err := utils.UploadIngestXML([]byte(page), name); err != nil {
				log.Println("failed to stage raw XML:", err)
			}

			records, err := ParseSummaries(page)
			if err != nil {
				ws.SendIngestStatus(jobID, "failed", progress, err.Error())
				return result, fmt.Errorf("parse for %s failed: %w", fromDate, err)
			}
			result.Parsed += len(records)

			created, updated, err := UpsertSummaries(db, records)
			if err != nil {
				ws.SendIngestStatus(jobID, "failed", progress, err.Error())
				return result, fmt.Errorf("load for %s failed: %w", fromDate, err)
			}
			result.Created += created
			result.Updated += updated
		}
	}

	ws.SendIngestStatus(jobID, "done", 1.0, "")
	ws.BroadcastContentChanged()
	return result, nil
}

// UpsertSummaries writes parsed records into arxiv_summaries, keyed on
// unique_identifier. The schema declares no unique constraint on that column,
// so dedup is a find-then-update here rather than ON CONFLICT.
func UpsertSummaries(db *gorm.DB, records []SummaryRecord) (created int, updated int, err error) {
	for _, record := range records {
		if record.Identifier == "" || record.Title == "" || record.Abstract == "" {
			continue // required fields, the store would reject the row anyway
		}

		var existing models.ArxivSummary
		err := db.Where("unique_identifier = ?", record.Identifier).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			summary := models.ArxivSummary{
				UniqueIdentifier: record.Identifier,
				Title:            record.Title,
				Summary:          record.Abstract,
			}
			if err := db.Create(&summary).Error; err != nil {
				return created, updated, err
			}
			created++
		case err != nil:
			return created, updated, err
		default:
			existing.Title = record.Title
			existing.Summary = record.Abstract
			if err := db.Save(&existing).Error; err != nil {
				return created, updated, err
			}
			updated++
		}
	}
	return created, updated, nil
}
