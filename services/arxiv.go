package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// DefaultArxivBaseURL is the arXiv OAI-PMH endpoint.
const DefaultArxivBaseURL = "http://export.arxiv.org/oai2"

// DefaultSummarySet is the arXiv set daily summaries are pulled from.
const DefaultSummarySet = "cs"

// politenessDelay is how long to wait between paged requests; arXiv asks
// harvesters not to hammer the endpoint.
const politenessDelay = 5 * time.Second

// backoffDelays are the waits applied on a 503 before giving up.
var backoffDelays = []time.Duration{30 * time.Second, 120 * time.Second}

// FetchDailySummaries pulls every ListRecords page for the given from-date
// and set, following resumptionTokens until the endpoint stops issuing them.
// Returns the raw XML of each page.
func FetchDailySummaries(baseURL, fromDate, summarySet string) ([]string, error) {
	if baseURL == "" {
		baseURL = DefaultArxivBaseURL
	}
	if summarySet == "" {
		summarySet = DefaultSummarySet
	}

	params := url.Values{}
	params.Set("verb", "ListRecords")
	params.Set("set", summarySet)
	params.Set("metadataPrefix", "oai_dc")
	params.Set("from", fromDate)

	var pages []string
	for {
		body, err := fetchBatch(baseURL, params)
		if err != nil {
			return pages, err
		}
		pages = append(pages, body)

		token, err := FindResumptionToken(body)
		if err != nil {
			return pages, err
		}
		if token == "" {
			break
		}

		log.Printf("Found resumptionToken: %s", token)
		params = url.Values{}
		params.Set("verb", "ListRecords")
		params.Set("resumptionToken", token)
		time.Sleep(politenessDelay)
	}

	return pages, nil
}

// fetchBatch requests one ListRecords page, retrying with backoff when the
// endpoint answers 503 (its way of saying "slow down").
func fetchBatch(baseURL string, params url.Values) (string, error) {
	requestURL := baseURL + "?" + params.Encode()

	var lastStatus int
	for attempt := 0; ; attempt++ {
		log.Printf("Fetching arxiv research summaries: %s", requestURL)

		resp, err := http.Get(requestURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch arXiv data: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read arXiv response: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			return string(body), nil
		}

		lastStatus = resp.StatusCode
		if resp.StatusCode != http.StatusServiceUnavailable || attempt >= len(backoffDelays) {
			break
		}

		delay := backoffDelays[attempt]
		log.Printf("arXiv returned 503, backing off %s", delay)
		time.Sleep(delay)
	}

	return "", fmt.Errorf("arXiv request failed with status %d", lastStatus)
}

// BackfillDates returns the from-dates to harvest relative to now. arXiv does
// not announce over the weekend, so a Monday or Sunday harvest also needs the
// dates the weekend swallowed.
func BackfillDates(now time.Time) []string {
	yesterday := now.AddDate(0, 0, -1)
	dates := []string{yesterday.Format("2006-01-02")}

	switch yesterday.Weekday() {
	case time.Sunday:
		dates = append(dates,
			yesterday.AddDate(0, 0, -2).Format("2006-01-02"), // Friday
			yesterday.AddDate(0, 0, -1).Format("2006-01-02"), // Saturday
		)
	case time.Monday:
		dates = append(dates,
			yesterday.AddDate(0, 0, -2).Format("2006-01-02"), // Saturday
			yesterday.AddDate(0, 0, -1).Format("2006-01-02"), // Sunday
		)
	}

	return dates
}
