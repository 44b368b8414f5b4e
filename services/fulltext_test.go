package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaperPDFURL(t *testing.T) {
	assert.Equal(t, "https://arxiv.org/pdf/2407.01234", PaperPDFURL("oai:arXiv.org:2407.01234"))
	// bare ids pass through unchanged
	assert.Equal(t, "https://arxiv.org/pdf/2407.01234", PaperPDFURL("2407.01234"))
}
