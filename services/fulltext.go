package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PaperPDFURL derives the PDF location from an OAI identifier
// ("oai:arXiv.org:2301.00001" -> "https://arxiv.org/pdf/2301.00001").
func PaperPDFURL(identifier string) string {
	id := identifier
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		id = id[idx+1:]
	}
	return "https://arxiv.org/pdf/" + id
}

// FetchPaperFullText downloads a paper PDF and extracts its plain text,
// used to ground script drafting beyond the abstract.
func FetchPaperFullText(fullTextURL string) (string, error) {
	resp, err := http.Get(fullTextURL)
	if err != nil {
		return "", fmt.Errorf("failed to download PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("PDF download failed with status %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read PDF body: %w", err)
	}

	return extractPDFText(buf.Bytes())
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("cannot create PDF reader: %w", err)
	}

	var textBuilder bytes.Buffer
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(content)
	}

	return textBuilder.String(), nil
}
