package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/config"
	"github.com/techcraftingai/content-backend/models"
)

type SummaryInput struct {
	UniqueIdentifier string `json:"unique_identifier" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Summary          string `json:"summary" binding:"required"`
}

// CreateSummary upserts a paper summary by its identifier. The column has no
// unique constraint in the schema, so the dedup is a find-then-update here.
func CreateSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input SummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.ArxivSummary
	err := db.Where("unique_identifier = ?", input.UniqueIdentifier).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		summary := models.ArxivSummary{
			UniqueIdentifier: input.UniqueIdentifier,
			Title:            input.Title,
			Summary:          input.Summary,
		}
		if err := db.Create(&summary).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create summary", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, summary)
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		existing.Title = input.Title
		existing.Summary = input.Summary
		if err := db.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update summary", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, existing)
	}
}

func GetSummaries(c *gin.Context) {
	var summaries []models.ArxivSummary

	query := config.DB.Model(&models.ArxivSummary{})

	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(unique_identifier) LIKE LOWER(?)",
			"%"+q+"%", "%"+q+"%")
	}

	if err := query.Order("created_at desc").Limit(200).Find(&summaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list summaries"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func GetSummaryDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var summary models.ArxivSummary
	if err := db.First(&summary, "summary_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteSummary removes a summary unless an episode or edition still cites it.
func DeleteSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var summary models.ArxivSummary
	if err := db.First(&summary, "summary_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return
	}

	if err := db.Delete(&summary).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Summary is still cited by an episode or edition", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary deleted"})
}
