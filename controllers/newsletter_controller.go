package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/config"
	"github.com/techcraftingai/content-backend/models"
)

type NewsletterInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func CreateNewsletter(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter := models.Newsletter{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
	}

	if err := db.Create(&newsletter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create newsletter", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newsletter)
}

func GetNewsletters(c *gin.Context) {
	var newsletters []models.Newsletter
	name := c.Query("name")

	query := config.DB.Model(&models.Newsletter{})

	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	if err := query.Order("created_at desc").Find(&newsletters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list newsletters"})
		return
	}

	c.JSON(http.StatusOK, newsletters)
}

func GetNewsletterDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var newsletter models.Newsletter
	if err := db.Preload("Editions").First(&newsletter, "newsletter_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Newsletter not found"})
		return
	}

	c.JSON(http.StatusOK, newsletter)
}

func UpdateNewsletter(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var newsletter models.Newsletter
	if err := db.First(&newsletter, "newsletter_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Newsletter not found"})
		return
	}

	var input NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter.Name = input.Name
	newsletter.Description = input.Description
	newsletter.URL = input.URL

	if err := db.Save(&newsletter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update newsletter", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newsletter)
}

func DeleteNewsletter(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var newsletter models.Newsletter
	if err := db.First(&newsletter, "newsletter_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Newsletter not found"})
		return
	}

	if err := db.Delete(&newsletter).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Newsletter still has editions referencing it", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Newsletter deleted"})
}
