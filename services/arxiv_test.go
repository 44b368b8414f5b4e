package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListRecords = `<?xml version="1.0" encoding="UTF-8"?>
<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <responseDate>2024-07-16T09:00:00Z</responseDate>
  <ListRecords>
    <record>
      <header>
        <identifier>oai:arXiv.org:2407.01234</identifier>
        <datestamp>2024-07-15</datestamp>
      </header>
      <metadata>
        <oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/" xmlns:dc="http://purl.org/dc/elements/1.1/">
          <dc:title>Sparse Attention at Scale</dc:title>
          <dc:creator>Doe, Jane</dc:creator>
          <dc:creator>Nguyen, Minh</dc:creator>
          <dc:subject>Computer Science - Machine Learning</dc:subject>
          <dc:subject>Computer Science - Computation and Language</dc:subject>
          <dc:description>We study sparse attention.</dc:description>
          <dc:date>2024-07-15</dc:date>
          <dc:identifier>http://arxiv.org/abs/2407.01234</dc:identifier>
        </oai_dc:dc>
      </metadata>
    </record>
    <record>
      <header>
        <identifier>oai:arXiv.org:2201.09999</identifier>
        <datestamp>2024-07-15</datestamp>
      </header>
      <metadata>
        <oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/" xmlns:dc="http://purl.org/dc/elements/1.1/">
          <dc:title>An Amended Paper</dc:title>
          <dc:creator>Smith, Alex</dc:creator>
          <dc:subject>Computer Science - Databases</dc:subject>
          <dc:description>Revised twice.</dc:description>
          <dc:date>2022-01-20</dc:date>
          <dc:date>2024-07-15</dc:date>
          <dc:identifier>http://arxiv.org/abs/2201.09999</dc:identifier>
        </oai_dc:dc>
      </metadata>
    </record>
    <resumptionToken cursor="0" completeListSize="642">7245248|1001</resumptionToken>
  </ListRecords>
</OAI-PMH>`

func TestParseSummaries(t *testing.T) {
	records, err := ParseSummaries(sampleListRecords)
	require.NoError(t, err)

	// the amended record carries two dc:date entries and is skipped
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "oai:arXiv.org:2407.01234", rec.Identifier)
	assert.Equal(t, "Sparse Attention at Scale", rec.Title)
	assert.Equal(t, "We study sparse attention.", rec.Abstract)
	assert.Equal(t, "http://arxiv.org/abs/2407.01234", rec.AbstractURL)
	assert.Equal(t, "http://arxiv.org/pdf/2407.01234", rec.FullTextURL)
	assert.Equal(t, "2024-07-15", rec.Date)
	assert.Equal(t, "LG", rec.PrimaryCategory)
	assert.Equal(t, []string{"LG", "CL"}, rec.Categories)

	require.Len(t, rec.Authors, 2)
	assert.Equal(t, Author{FirstName: "Jane", LastName: "Doe"}, rec.Authors[0])
	assert.Equal(t, Author{FirstName: "Minh", LastName: "Nguyen"}, rec.Authors[1])
}

func TestParseSummariesError(t *testing.T) {
	response := `<?xml version="1.0" encoding="UTF-8"?>
<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <error code="noRecordsMatch">No matching records</error>
</OAI-PMH>`

	_, err := ParseSummaries(response)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noRecordsMatch")
}

func TestParseSummariesBadXML(t *testing.T) {
	_, err := ParseSummaries("this is not xml")
	assert.Error(t, err)
}

func TestFindResumptionToken(t *testing.T) {
	token, err := FindResumptionToken(sampleListRecords)
	require.NoError(t, err)
	assert.Equal(t, "7245248|1001", token)
}

func TestFindResumptionTokenLastPage(t *testing.T) {
	response := `<?xml version="1.0" encoding="UTF-8"?>
<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <ListRecords>
    <resumptionToken cursor="1000" completeListSize="642"></resumptionToken>
  </ListRecords>
</OAI-PMH>`

	token, err := FindResumptionToken(response)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestExtractAuthorsSingleName(t *testing.T) {
	authors := extractAuthors([]string{"Plato", "Curie, Marie", ""})
	require.Len(t, authors, 2)
	assert.Equal(t, Author{LastName: "Plato"}, authors[0])
	assert.Equal(t, Author{FirstName: "Marie", LastName: "Curie"}, authors[1])
}

func TestBackfillDates(t *testing.T) {
	// mid-week run: only yesterday needs harvesting
	thursday := time.Date(2024, 7, 18, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2024-07-17"}, BackfillDates(thursday))

	// Monday run: yesterday is Sunday, so Friday and Saturday come along
	monday := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2024-07-14", "2024-07-12", "2024-07-13"}, BackfillDates(monday))

	// Tuesday run: yesterday is Monday, the weekend comes along
	tuesday := time.Date(2024, 7, 16, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2024-07-15", "2024-07-13", "2024-07-14"}, BackfillDates(tuesday))
}
