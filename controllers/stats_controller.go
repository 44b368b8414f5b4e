package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techcraftingai/content-backend/models"
)

type MonthlyPoint struct {
	Month    string `json:"month"` // "2025-01"
	Episodes int64  `json:"episodes"`
	Editions int64  `json:"editions"`
}

type PlatformShareItem struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type TopSummaryItem struct {
	SummaryID        uint   `json:"summary_id"`
	UniqueIdentifier string `json:"unique_identifier"`
	Title            string `json:"title"`
	Citations        int64  `json:"citations"`
}

type DashboardOverview struct {
	TotalPodcasts     int64               `json:"total_podcasts"`
	TotalEpisodes     int64               `json:"total_episodes"`
	TotalNewsletters  int64               `json:"total_newsletters"`
	TotalEditions     int64               `json:"total_editions"`
	TotalSummaries    int64               `json:"total_summaries"`
	TotalShares       int64               `json:"total_shares"`
	EpisodesByStatus  map[string]int64    `json:"episodes_by_status"`
	SharesByPlatform  []PlatformShareItem `json:"shares_by_platform"`
	TopCitedSummaries []TopSummaryItem    `json:"top_cited_summaries"`
}

// Helper to parse ?year=
func getYearParam(c *gin.Context) int {
	yStr := c.Query("year")
	if yStr == "" {
		return time.Now().Year()
	}
	if y, err := strconv.Atoi(yStr); err == nil {
		return y
	}
	return time.Now().Year()
}

// ===================== Dashboard overview =====================
func GetDashboardOverview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	overview := DashboardOverview{
		EpisodesByStatus: map[string]int64{},
	}

	db.Model(&models.Podcast{}).Count(&overview.TotalPodcasts)
	db.Model(&models.PodcastEpisode{}).Count(&overview.TotalEpisodes)
	db.Model(&models.Newsletter{}).Count(&overview.TotalNewsletters)
	db.Model(&models.NewsletterEdition{}).Count(&overview.TotalEditions)
	db.Model(&models.ArxivSummary{}).Count(&overview.TotalSummaries)
	db.Model(&models.SocialShare{}).Count(&overview.TotalShares)

	type statusCount struct {
		Status string
		Count  int64
	}
	var statuses []statusCount
	db.Model(&models.PodcastEpisode{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statuses)
	for _, s := range statuses {
		overview.EpisodesByStatus[s.Status] = s.Count
	}

	db.Raw(`
		SELECT platform, COUNT(*) as count
		FROM social_shares
		GROUP BY platform
		ORDER BY count DESC
	`).Scan(&overview.SharesByPlatform)

	// Citations from both junction tables
	db.Raw(`
		SELECT s.summary_id, s.unique_identifier, s.title, COUNT(*) as citations
		FROM arxiv_summaries s
		JOIN (
			SELECT summary_id FROM podcast_episode_summary
			UNION ALL
			SELECT summary_id FROM newsletter_edition_summary
		) c ON c.summary_id = s.summary_id
		GROUP BY s.summary_id, s.unique_identifier, s.title
		ORDER BY citations DESC
		LIMIT 10
	`).Scan(&overview.TopCitedSummaries)

	c.JSON(http.StatusOK, overview)
}

// ===================== Monthly production =====================
func GetMonthlyProduction(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	year := getYearParam(c)

	type point struct {
		Month string
		Count int64
	}

	readMonthly := func(table string) map[string]int64 {
		rows, err := db.Raw(`
			SELECT TO_CHAR(date, 'YYYY-MM') AS month, COUNT(*) AS count
			FROM `+table+`
			WHERE EXTRACT(YEAR FROM date) = ?
			GROUP BY month
			ORDER BY month
		`, year).Rows()
		out := map[string]int64{}
		if err != nil {
			return out
		}
		defer rows.Close()
		for rows.Next() {
			var p point
			if err := rows.Scan(&p.Month, &p.Count); err != nil {
				continue
			}
			out[p.Month] = p.Count
		}
		return out
	}

	episodes := readMonthly("podcast_episodes")
	editions := readMonthly("newsletter_editions")

	// always return all 12 months
	out := []MonthlyPoint{}
	for m := 1; m <= 12; m++ {
		key := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
		out = append(out, MonthlyPoint{Month: key, Episodes: episodes[key], Editions: editions[key]})
	}
	c.JSON(http.StatusOK, out)
}
