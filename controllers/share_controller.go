package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/config"
	"github.com/techcraftingai/content-backend/models"
)

type ShareInput struct {
	EpisodeID *uint  `json:"episode_id"`
	EditionID *uint  `json:"edition_id"`
	Platform  string `json:"platform"`
	ShareURL  string `json:"share_url"`
}

// CreateShare records a share event. Both parent references are optional;
// the schema allows a share with neither, so that case is accepted as-is.
func CreateShare(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input ShareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var episode *models.PodcastEpisode
	if input.EpisodeID != nil {
		var e models.PodcastEpisode
		if err := db.Preload("Podcast").First(&e, "episode_id = ?", *input.EpisodeID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Episode does not exist"})
			return
		}
		episode = &e
	}

	var edition *models.NewsletterEdition
	if input.EditionID != nil {
		var e models.NewsletterEdition
		if err := db.Preload("Newsletter").First(&e, "edition_id = ?", *input.EditionID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Edition does not exist"})
			return
		}
		edition = &e
	}

	shareURL := input.ShareURL
	if shareURL == "" {
		shareURL = defaultShareURL(episode, edition)
	}

	share := models.SocialShare{
		EpisodeID: input.EpisodeID,
		EditionID: input.EditionID,
		Platform:  input.Platform,
		ShareURL:  shareURL,
	}

	if err := db.Create(&share).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot record share", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, share)
}

// defaultShareURL falls back to the shared entity's own URL, then to a
// slugged site path.
func defaultShareURL(episode *models.PodcastEpisode, edition *models.NewsletterEdition) string {
	if episode != nil {
		if episode.URL != "" {
			return episode.URL
		}
		return fmt.Sprintf("/podcasts/%s/episodes/%d",
			slug.Make(episode.Podcast.Name), episode.ID)
	}
	if edition != nil {
		if edition.URL != "" {
			return edition.URL
		}
		return fmt.Sprintf("/newsletters/%s/editions/%d",
			slug.Make(edition.Newsletter.Name), edition.ID)
	}
	return ""
}

func GetShares(c *gin.Context) {
	var shares []models.SocialShare

	query := config.DB.Model(&models.SocialShare{})

	if episodeID := c.Query("episode_id"); episodeID != "" {
		query = query.Where("episode_id = ?", episodeID)
	}
	if editionID := c.Query("edition_id"); editionID != "" {
		query = query.Where("edition_id = ?", editionID)
	}
	if platform := c.Query("platform"); platform != "" {
		query = query.Where("platform = ?", platform)
	}

	if err := query.Order("created_at desc").Find(&shares).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list shares"})
		return
	}

	c.JSON(http.StatusOK, shares)
}

func DeleteShare(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Delete(&models.SocialShare{}, "share_id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Share not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Share deleted"})
}
