package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/controllers"
	"github.com/techcraftingai/content-backend/middleware"
	"github.com/techcraftingai/content-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	// Public, read-only
	public := api.Group("")
	{
		public.GET("/podcasts", controllers.GetPodcasts)
		public.GET("/episodes", controllers.GetEpisodes)
		public.GET("/newsletters", controllers.GetNewsletters)
		public.GET("/editions", controllers.GetEditions)
		public.GET("/summaries", controllers.GetSummaries)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.DBMiddleware(db), middleware.RequireRoles("admin"))

		// Podcasts
		admin.POST("/podcasts", controllers.CreatePodcast)
		admin.GET("/podcasts/:id", controllers.GetPodcastDetail)
		admin.PUT("/podcasts/:id", controllers.UpdatePodcast)
		admin.DELETE("/podcasts/:id", controllers.DeletePodcast)
		admin.POST("/podcasts/:id/episodes", controllers.CreateEpisode)
		admin.POST("/podcasts/:id/import-rss", controllers.ImportPodcastRSS)

		// Episodes
		admin.GET("/episodes/:id", controllers.GetEpisodeDetail)
		admin.PUT("/episodes/:id", controllers.UpdateEpisode)
		admin.DELETE("/episodes/:id", controllers.DeleteEpisode)
		admin.PATCH("/episodes/:id/publish", controllers.PublishEpisode)
		admin.POST("/episodes/:id/summaries/:summaryID", controllers.AttachEpisodeSummary)
		admin.DELETE("/episodes/:id/summaries/:summaryID", controllers.DetachEpisodeSummary)
		admin.POST("/episodes/:id/draft", controllers.DraftEpisode)
		admin.POST("/episodes/:id/audio", controllers.GenerateEpisodeAudio)

		// Newsletters
		admin.POST("/newsletters", controllers.CreateNewsletter)
		admin.GET("/newsletters/:id", controllers.GetNewsletterDetail)
		admin.PUT("/newsletters/:id", controllers.UpdateNewsletter)
		admin.DELETE("/newsletters/:id", controllers.DeleteNewsletter)
		admin.POST("/newsletters/:id/editions", controllers.CreateEdition)

		// Editions
		admin.GET("/editions/:id", controllers.GetEditionDetail)
		admin.PUT("/editions/:id", controllers.UpdateEdition)
		admin.DELETE("/editions/:id", controllers.DeleteEdition)
		admin.PATCH("/editions/:id/publish", controllers.PublishEdition)
		admin.POST("/editions/:id/summaries/:summaryID", controllers.AttachEditionSummary)
		admin.DELETE("/editions/:id/summaries/:summaryID", controllers.DetachEditionSummary)
		admin.POST("/editions/:id/draft", controllers.DraftEdition)

		// Research summaries
		admin.POST("/summaries", controllers.CreateSummary)
		admin.GET("/summaries/:id", controllers.GetSummaryDetail)
		admin.DELETE("/summaries/:id", controllers.DeleteSummary)
		admin.POST("/arxiv/ingest", controllers.StartArxivIngest)

		// Social shares
		admin.POST("/shares", controllers.CreateShare)
		admin.GET("/shares", controllers.GetShares)
		admin.DELETE("/shares/:id", controllers.DeleteShare)

		// Dashboard
		admin.GET("/stats/overview", controllers.GetDashboardOverview)
		admin.GET("/stats/monthly", controllers.GetMonthlyProduction)
	}

	r.GET("/ws/ingest/:id", ws.HandleIngestWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
