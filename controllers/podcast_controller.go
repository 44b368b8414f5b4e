package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/config"
	"github.com/techcraftingai/content-backend/models"
)

type PodcastInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Platform    string `json:"platform"`
}

func CreatePodcast(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input PodcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	podcast := models.Podcast{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Platform:    input.Platform,
	}

	if err := db.Create(&podcast).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create podcast", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, podcast)
}

func GetPodcasts(c *gin.Context) {
	var podcasts []models.Podcast
	name := c.Query("name")

	query := config.DB.Model(&models.Podcast{})

	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	if err := query.Order("created_at desc").Find(&podcasts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list podcasts"})
		return
	}

	c.JSON(http.StatusOK, podcasts)
}

func GetPodcastDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var podcast models.Podcast
	if err := db.Preload("Episodes").First(&podcast, "podcast_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	c.JSON(http.StatusOK, podcast)
}

func UpdatePodcast(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var podcast models.Podcast
	if err := db.First(&podcast, "podcast_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	var input PodcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	podcast.Name = input.Name
	podcast.Description = input.Description
	podcast.URL = input.URL
	podcast.Platform = input.Platform

	if err := db.Save(&podcast).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update podcast", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, podcast)
}

// DeletePodcast removes a podcast. There is no ON DELETE cascade in the
// schema, so the store rejects the delete while episodes still reference it.
func DeletePodcast(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var podcast models.Podcast
	if err := db.First(&podcast, "podcast_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	if err := db.Delete(&podcast).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Podcast still has episodes referencing it", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Podcast deleted"})
}
