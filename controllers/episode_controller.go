package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/config"
	"github.com/techcraftingai/content-backend/models"
	"github.com/techcraftingai/content-backend/services"
	"github.com/techcraftingai/content-backend/utils"
)

type EpisodeInput struct {
	Date         string `json:"date" binding:"required"` // production date, YYYY-MM-DD
	Status       string `json:"status"`
	Script       string `json:"script"`
	ShowNotes    string `json:"show_notes"`
	Themes       string `json:"themes"`
	SocialPost   string `json:"social_post"`
	URL          string `json:"url"`
	AudioFileURL string `json:"audio_file_url"`
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// CreateEpisode creates an episode under a podcast.
func CreateEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var podcast models.Podcast
	if err := db.First(&podcast, "podcast_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	var input EpisodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}

	episode := models.PodcastEpisode{
		PodcastID:    podcast.ID,
		Date:         date,
		Status:       status,
		Script:       input.Script,
		ShowNotes:    input.ShowNotes,
		Themes:       input.Themes,
		SocialPost:   input.SocialPost,
		URL:          input.URL,
		AudioFileURL: input.AudioFileURL,
	}

	if err := db.Create(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create episode", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, episode)
}

func GetEpisodes(c *gin.Context) {
	var episodes []models.PodcastEpisode

	query := config.DB.Model(&models.PodcastEpisode{})

	if podcastID := c.Query("podcast_id"); podcastID != "" {
		query = query.Where("podcast_id = ?", podcastID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("date desc").Find(&episodes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list episodes"})
		return
	}

	c.JSON(http.StatusOK, episodes)
}

func GetEpisodeDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.Preload("Summaries").First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	c.JSON(http.StatusOK, episode)
}

func UpdateEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	var input EpisodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	episode.Date = date
	if input.Status != "" {
		episode.Status = input.Status
	}
	episode.Script = input.Script
	episode.ShowNotes = input.ShowNotes
	episode.Themes = input.Themes
	episode.SocialPost = input.SocialPost
	episode.URL = input.URL
	episode.AudioFileURL = input.AudioFileURL

	if err := db.Save(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update episode", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, episode)
}

// PublishEpisode marks the episode published and stamps the published date.
// Idempotent: republishing keeps the original date.
func PublishEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	if episode.Status != models.StatusPublished {
		now := time.Now()
		episode.Status = models.StatusPublished
		episode.PublishedDate = &now

		if err := db.Save(&episode).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot publish episode", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, episode)
}

// AttachEpisodeSummary adds a citation row to podcast_episode_summary.
// The composite primary key rejects a duplicate pair.
func AttachEpisodeSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	var summary models.ArxivSummary
	if err := db.First(&summary, "summary_id = ?", c.Param("summaryID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return
	}

	link := models.PodcastEpisodeSummary{
		PodcastEpisodeID: episode.ID,
		ArxivSummaryID:   summary.ID,
	}

	if err := db.Create(&link).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Summary already attached to this episode"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func DetachEpisodeSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Where("episode_id = ? AND summary_id = ?", c.Param("id"), c.Param("summaryID")).
		Delete(&models.PodcastEpisodeSummary{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary is not attached to this episode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary detached"})
}

type DraftEpisodeInput struct {
	IncludeFullText bool `json:"include_full_text"`
}

// DraftEpisode generates script, show notes, themes and social post copy
// from the episode's attached summaries.
func DraftEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.Preload("Summaries").Preload("Podcast").First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	var input DraftEpisodeInput
	_ = c.ShouldBindJSON(&input) // body is optional

	// Optionally pull paper bodies to ground the script
	var fullTexts []string
	if input.IncludeFullText {
		for _, summary := range episode.Summaries {
			text, err := services.FetchPaperFullText(services.PaperPDFURL(summary.UniqueIdentifier))
			if err != nil {
				// abstracts alone are enough to draft from
				continue
			}
			fullTexts = append(fullTexts, text)
		}
	}

	if err := services.DraftEpisodeContent(&episode.Podcast, &episode, fullTexts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Drafting failed", "details": err.Error()})
		return
	}

	if err := db.Save(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save drafted episode", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, episode)
}

type EpisodeAudioInput struct {
	Voice        string  `json:"voice"`
	SpeakingRate float64 `json:"speaking_rate"`
}

// GenerateEpisodeAudio synthesizes the script, uploads the MP3 and stores
// its URL on the episode.
func GenerateEpisodeAudio(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	if episode.Script == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Episode has no script to synthesize"})
		return
	}

	var input EpisodeAudioInput
	_ = c.ShouldBindJSON(&input)

	audio, err := services.SynthesizeText(episode.Script, input.Voice, input.SpeakingRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Audio synthesis failed", "details": err.Error()})
		return
	}

	filename := uuid.New().String() + ".mp3"
	audioURL, err := utils.UploadAudioToSupabase(audio, filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot upload audio", "details": err.Error()})
		return
	}

	episode.AudioFileURL = audioURL
	if err := db.Save(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save episode", "details": err.Error()})
		return
	}

	duration, err := services.GetMP3DurationFromURL(audioURL)
	if err != nil {
		duration = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"episode":      episode,
		"duration_sec": int(duration),
	})
}

type ImportRSSInput struct {
	FeedURL string `json:"feed_url"`
}

// ImportPodcastRSS pulls a podcast's RSS feed and creates draft episodes for
// items not seen yet (matched on episode URL).
func ImportPodcastRSS(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var podcast models.Podcast
	if err := db.First(&podcast, "podcast_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	var input ImportRSSInput
	_ = c.ShouldBindJSON(&input)

	feedURL := input.FeedURL
	if feedURL == "" {
		feedURL = podcast.URL
	}
	if feedURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No feed URL given and podcast has none"})
		return
	}

	items, err := services.ParsePodcastFeed(feedURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Cannot read feed", "details": err.Error()})
		return
	}

	imported := 0
	for _, item := range items {
		if item.Link != "" {
			var count int64
			db.Model(&models.PodcastEpisode{}).
				Where("podcast_id = ? AND url = ?", podcast.ID, item.Link).
				Count(&count)
			if count > 0 {
				continue
			}
		}

		date := time.Now()
		if item.Published != nil {
			date = *item.Published
		}

		episode := models.PodcastEpisode{
			PodcastID:     podcast.ID,
			Date:          date,
			PublishedDate: item.Published,
			Status:        models.StatusPublished, // feed items are already out
			ShowNotes:     item.Description,
			URL:           item.Link,
			AudioFileURL:  item.AudioURL,
		}
		if err := db.Create(&episode).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot import episode", "details": err.Error()})
			return
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported, "total_items": len(items)})
}

// DeleteEpisode removes an episode unless citation or share rows still
// reference it.
func DeleteEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var episode models.PodcastEpisode
	if err := db.First(&episode, "episode_id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.Delete(&episode).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Episode is still referenced by citations or shares", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Episode deleted"})
}
