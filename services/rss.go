package services

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedEpisode is one episode-shaped item pulled from a podcast RSS feed.
type FeedEpisode struct {
	Title       string
	Link        string
	AudioURL    string
	Description string
	Published   *time.Time
}

// ParsePodcastFeed fetches a podcast RSS feed and maps its items to
// episode candidates.
func ParsePodcastFeed(feedURL string) ([]FeedEpisode, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed contains no items")
	}

	episodes := make([]FeedEpisode, 0, len(feed.Items))
	for _, item := range feed.Items {
		episodes = append(episodes, MapFeedItem(item))
	}

	return episodes, nil
}

// MapFeedItem converts one feed item, preferring the audio enclosure URL.
func MapFeedItem(item *gofeed.Item) FeedEpisode {
	ep := FeedEpisode{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		Published:   item.PublishedParsed,
	}

	for _, enc := range item.Enclosures {
		if enc.URL != "" {
			ep.AudioURL = enc.URL
			break
		}
	}

	return ep
}
