package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/services"
)

type IngestInput struct {
	FromDate string `json:"from_date"` // optional, YYYY-MM-DD
}

// StartArxivIngest kicks off a harvest job in the background and returns its
// id. When no from-date is given the job covers yesterday plus the weekend
// dates arXiv skipped announcing. Progress is pushed over /ws/ingest/:id.
func StartArxivIngest(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input IngestInput
	_ = c.ShouldBindJSON(&input) // body is optional

	var fromDates []string
	if input.FromDate != "" {
		if _, err := time.Parse("2006-01-02", input.FromDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from_date, expected YYYY-MM-DD"})
			return
		}
		fromDates = []string{input.FromDate}
	} else {
		fromDates = services.BackfillDates(time.Now())
	}

	jobID := uuid.New().String()

	go func() {
		result, err := services.RunArxivIngest(db, jobID, fromDates)
		if err != nil {
			log.Printf("ingest job %s failed: %v", jobID, err)
			return
		}
		log.Printf("ingest job %s done: %d parsed, %d created, %d updated",
			jobID, result.Parsed, result.Created, result.Updated)
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"dates":  fromDates,
	})
}
