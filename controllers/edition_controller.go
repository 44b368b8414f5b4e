package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/config"
	"github.com/techcraftingai/content-backend/models"
	"github.com/techcraftingai/content-backend/services"
)

type EditionInput struct {
	Date          string `json:"date" binding:"required"` // production date, YYYY-MM-DD
	Status        string `json:"status"`
	Content       string `json:"content"`
	URL           string `json:"url"`
	TiedPodcastID *uint  `json:"tied_podcast_id"`
}

// resolveTiedPodcast validates the optional podcast tie-back.
func resolveTiedPodcast(c *gin.Context, db *gorm.DB, id *uint) bool {
	if id == nil {
		return true
	}
	var podcast models.Podcast
	if err := db.First(&podcast, "podcast_id = ?", *id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tied podcast does not exist"})
		return false
	}
	return true
}

// CreateEdition creates an edition under a newsletter.
func CreateEdition(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var newsletter models.Newsletter
	if err := db.First(&newsletter, "newsletter_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Newsletter not found"})
		return
	}

	var input EditionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if !resolveTiedPodcast(c, db, input.TiedPodcastID) {
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}

	edition := models.NewsletterEdition{
		NewsletterID:  newsletter.ID,
		Date:          date,
		Status:        status,
		Content:       input.Content,
		URL:           input.URL,
		TiedPodcastID: input.TiedPodcastID,
	}

	if err := db.Create(&edition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create edition", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, edition)
}

func GetEditions(c *gin.Context) {
	var editions []models.NewsletterEdition

	query := config.DB.Model(&models.NewsletterEdition{})

	if newsletterID := c.Query("newsletter_id"); newsletterID != "" {
		query = query.Where("newsletter_id = ?", newsletterID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("date desc").Find(&editions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list editions"})
		return
	}

	c.JSON(http.StatusOK, editions)
}

func GetEditionDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var edition models.NewsletterEdition
	if err := db.Preload("Summaries").First(&edition, "edition_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	c.JSON(http.StatusOK, edition)
}

func UpdateEdition(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var edition models.NewsletterEdition
	if err := db.First(&edition, "edition_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	var input EditionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if !resolveTiedPodcast(c, db, input.TiedPodcastID) {
		return
	}

	edition.Date = date
	if input.Status != "" {
		edition.Status = input.Status
	}
	edition.Content = input.Content
	edition.URL = input.URL
	edition.TiedPodcastID = input.TiedPodcastID

	if err := db.Save(&edition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update edition", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, edition)
}

// PublishEdition marks the edition published and stamps the published date.
func PublishEdition(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var edition models.NewsletterEdition
	if err := db.First(&edition, "edition_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	if edition.Status != models.StatusPublished {
		now := time.Now()
		edition.Status = models.StatusPublished
		edition.PublishedDate = &now

		if err := db.Save(&edition).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot publish edition", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, edition)
}

// AttachEditionSummary adds a coverage row to newsletter_edition_summary.
func AttachEditionSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var edition models.NewsletterEdition
	if err := db.First(&edition, "edition_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	var summary models.ArxivSummary
	if err := db.First(&summary, "summary_id = ?", c.Param("summaryID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return
	}

	link := models.NewsletterEditionSummary{
		NewsletterEditionID: edition.ID,
		ArxivSummaryID:      summary.ID,
	}

	if err := db.Create(&link).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Summary already attached to this edition"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func DetachEditionSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Where("edition_id = ? AND summary_id = ?", c.Param("id"), c.Param("summaryID")).
		Delete(&models.NewsletterEditionSummary{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary is not attached to this edition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary detached"})
}

// DraftEdition generates the edition body from its attached summaries.
func DraftEdition(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var edition models.NewsletterEdition
	if err := db.Preload("Summaries").Preload("Newsletter").First(&edition, "edition_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	if err := services.DraftEditionContent(&edition.Newsletter, &edition); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Drafting failed", "details": err.Error()})
		return
	}

	if err := db.Save(&edition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save drafted edition", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, edition)
}

func DeleteEdition(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var edition models.NewsletterEdition
	if err := db.First(&edition, "edition_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	if err := db.Delete(&edition).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Edition is still referenced by citations or shares", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Edition deleted"})
}
