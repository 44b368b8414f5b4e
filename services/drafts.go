package services

import (
	"fmt"
	"strings"

	"github.com/techcraftingai/content-backend/models"
)

// summariesDigest renders the attached paper summaries as prompt context.
func summariesDigest(summaries []models.ArxivSummary) string {
	var b strings.Builder
	for i, s := range summaries {
		fmt.Fprintf(&b, "Paper %d: %s (%s)\n%s\n\n", i+1, s.Title, s.UniqueIdentifier, s.Summary)
	}
	return b.String()
}

// DraftEpisodeContent fills the episode's script, show notes, themes and
// social post copy from its attached summaries. fullTexts, when present, are
// extracted paper bodies used to ground the script beyond the abstracts.
func DraftEpisodeContent(podcast *models.Podcast, episode *models.PodcastEpisode, fullTexts []string) error {
	if len(episode.Summaries) == 0 {
		return fmt.Errorf("episode has no attached summaries to draft from")
	}

	digest := summariesDigest(episode.Summaries)
	extra := ""
	if len(fullTexts) > 0 {
		extra = "\n\nFull paper text for additional grounding:\n" + strings.Join(fullTexts, "\n---\n")
	}

	script, err := GeminiGenerateText(fmt.Sprintf(
		`You are the scriptwriter for the podcast "%s". Write a complete episode script
covering the following research papers. Plain spoken prose only, no headers,
no markdown, ready for text-to-speech. Open with a short intro, cover each
paper with context a technical listener needs, close with a sign-off.

%s%s`, podcast.Name, digest, extra))
	if err != nil {
		return err
	}

	showNotes, err := GeminiGenerateText(fmt.Sprintf(
		`Write concise show notes for a podcast episode covering these papers.
One short paragraph per paper with its arXiv identifier.

%s`, digest))
	if err != nil {
		return err
	}

	themes, err := GeminiGenerateText(fmt.Sprintf(
		`List the recurring research themes across these papers, one theme per
line, no numbering.

%s`, digest))
	if err != nil {
		return err
	}

	socialPost, err := GeminiGenerateText(fmt.Sprintf(
		`Write a single social media post (under 280 characters) announcing a new
episode of "%s" covering these papers. No hashtag spam, at most two hashtags.

%s`, podcast.Name, digest))
	if err != nil {
		return err
	}

	episode.Script = strings.TrimSpace(script)
	episode.ShowNotes = strings.TrimSpace(showNotes)
	episode.Themes = strings.TrimSpace(themes)
	episode.SocialPost = strings.TrimSpace(socialPost)
	return nil
}

// DraftEditionContent fills the edition's body from its attached summaries.
func DraftEditionContent(newsletter *models.Newsletter, edition *models.NewsletterEdition) error {
	if len(edition.Summaries) == 0 {
		return fmt.Errorf("edition has no attached summaries to draft from")
	}

	content, err := GeminiGenerateText(fmt.Sprintf(
		`You write the newsletter "%s". Draft the body of an edition covering the
research papers below. Per paper: a heading with the title, one accessible
summary paragraph, and the arXiv identifier. Open with a short editorial
introduction.

%s`, newsletter.Name, summariesDigest(edition.Summaries)))
	if err != nil {
		return err
	}

	edition.Content = strings.TrimSpace(content)
	return nil
}
