package services

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
)

func TestMapFeedItem(t *testing.T) {
	published := time.Date(2024, 7, 15, 6, 0, 0, 0, time.UTC)
	item := &gofeed.Item{
		Title:           "Episode 12: Sparse Attention",
		Link:            "https://example.com/episodes/12",
		Description:     "We talk sparse attention.",
		PublishedParsed: &published,
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://cdn.example.com/ep12.mp3", Type: "audio/mpeg"},
		},
	}

	ep := MapFeedItem(item)
	assert.Equal(t, "Episode 12: Sparse Attention", ep.Title)
	assert.Equal(t, "https://example.com/episodes/12", ep.Link)
	assert.Equal(t, "https://cdn.example.com/ep12.mp3", ep.AudioURL)
	assert.Equal(t, "We talk sparse attention.", ep.Description)
	assert.Equal(t, &published, ep.Published)
}

func TestMapFeedItemNoEnclosure(t *testing.T) {
	item := &gofeed.Item{
		Title: "Show notes only",
		Link:  "https://example.com/episodes/13",
	}

	ep := MapFeedItem(item)
	assert.Equal(t, "", ep.AudioURL)
	assert.Nil(t, ep.Published)
}
