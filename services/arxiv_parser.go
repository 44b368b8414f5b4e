package services

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Author of a paper, as split from the oai_dc "Last, First" creator form.
type Author struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SummaryRecord is one parsed arXiv research summary.
type SummaryRecord struct {
	Identifier      string   `json:"identifier"`
	AbstractURL     string   `json:"abstract_url"`
	FullTextURL     string   `json:"full_text_url"`
	Title           string   `json:"title"`
	Abstract        string   `json:"abstract"`
	Authors         []Author `json:"authors"`
	PrimaryCategory string   `json:"primary_category"`
	Categories      []string `json:"categories"`
	Date            string   `json:"date"`
}

type oaiEnvelope struct {
	XMLName     xml.Name `xml:"OAI-PMH"`
	Error       *oaiError
	ListRecords struct {
		Records         []oaiRecord `xml:"record"`
		ResumptionToken string      `xml:"resumptionToken"`
	} `xml:"ListRecords"`
}

type oaiError struct {
	XMLName xml.Name `xml:"error"`
	Code    string   `xml:"code,attr"`
	Message string   `xml:",chardata"`
}

type oaiRecord struct {
	Header struct {
		Identifier string `xml:"identifier"`
	} `xml:"header"`
	Metadata struct {
		DC struct {
			Titles       []string `xml:"title"`
			Creators     []string `xml:"creator"`
			Subjects     []string `xml:"subject"`
			Descriptions []string `xml:"description"`
			Dates        []string `xml:"date"`
			Identifiers  []string `xml:"identifier"`
		} `xml:"dc"`
	} `xml:"metadata"`
}

// csCategories maps the verbose oai_dc subject names to arXiv category codes.
var csCategories = map[string]string{
	"Computer Science - Artifical Intelligence":                             "AI",
	"Computer Science - Hardware Architecture":                              "AR",
	"Computer Science - Computational Complexity":                           "CC",
	"Computer Science - Computational Engineering, Finance, and Science":    "CE",
	"Computer Science - Computational Geometry":                             "CG",
	"Computer Science - Computation and Language":                           "CL",
	"Computer Science - Cryptography and Security":                          "CR",
	"Computer Science - Computer Vision and Pattern Recognition":            "CV",
	"Computer Science - Computers and Society":                              "CY",
	"Computer Science - Databases":                                          "DB",
	"Computer Science - Distributed, Parallel, and Cluster Computing":       "DC",
	"Computer Science - Digital Libraries":                                  "DL",
	"Computer Science - Discrete Mathematics":                               "DM",
	"Computer Science - Data Structures and Algorithms":                     "DS",
	"Computer Science - Emerging Technologies":                              "ET",
	"Computer Science - Formal Languages and Automata Theory":               "FL",
	"Computer Science - General Literature":                                 "GL",
	"Computer Science - Graphics":                                           "GR",
	"Computer Science - Computer Science and Game Theory":                   "GT",
	"Computer Science - Human-Computer Interaction":                         "HC",
	"Computer Science - Information Retrieval":                              "IR",
	"Computer Science - Information Theory":                                 "IT",
	"Computer Science - Machine Learning":                                   "LG",
	"Computer Science - Logic in Computer Science":                          "LO",
	"Computer Science - Multiagent Systems":                                 "MA",
	"Computer Science - Multimedia":                                         "MM",
	"Computer Science - Mathematical Software":                              "MS",
	"Computer Science - Numerical Analysis":                                 "NA",
	"Computer Science - Neural and Evolutionary Computing":                  "NE",
	"Computer Science - Networking and Internet Architecture":               "NI",
	"Computer Science - Other Computer Science":                             "OH",
	"Computer Science - Operating Systems":                                  "OS",
	"Computer Science - Performance":                                        "PF",
	"Computer Science - Programming Languages":                              "PL",
	"Computer Science - Robotics":                                           "RO",
	"Computer Science - Symbolic Computation":                               "SC",
	"Computer Science - Sound":                                              "SD",
	"Computer Science - Software Engineering":                               "SE",
	"Computer Science - Social and Information Networks":                    "SI",
	"Computer Science - Systems and Control":                                "SY",
}

// ParseSummaries extracts the research summaries from one ListRecords page.
// Records that do not carry exactly one dc:date are skipped (amended records
// list every revision date and would double-count).
func ParseSummaries(xmlData string) ([]SummaryRecord, error) {
	var envelope oaiEnvelope
	if err := xml.Unmarshal([]byte(xmlData), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse OAI-PMH response: %w", err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("OAI-PMH error %s: %s", envelope.Error.Code, strings.TrimSpace(envelope.Error.Message))
	}

	var records []SummaryRecord
	for _, rec := range envelope.ListRecords.Records {
		if len(rec.Metadata.DC.Dates) != 1 {
			continue
		}
		records = append(records, extractRecord(rec))
	}

	return records, nil
}

// FindResumptionToken returns the resumptionToken of a ListRecords page, or
// "" when the page is the last one.
func FindResumptionToken(xmlData string) (string, error) {
	var envelope oaiEnvelope
	if err := xml.Unmarshal([]byte(xmlData), &envelope); err != nil {
		return "", fmt.Errorf("failed to parse OAI-PMH response: %w", err)
	}
	return strings.TrimSpace(envelope.ListRecords.ResumptionToken), nil
}

func extractRecord(rec oaiRecord) SummaryRecord {
	dc := rec.Metadata.DC

	abstractURL := first(dc.Identifiers)
	categories := extractCategories(dc.Subjects)
	primary := ""
	if len(categories) > 0 {
		primary = categories[0]
	}

	return SummaryRecord{
		Identifier:      rec.Header.Identifier,
		AbstractURL:     abstractURL,
		FullTextURL:     strings.Replace(abstractURL, "/abs/", "/pdf/", 1),
		Title:           strings.TrimSpace(first(dc.Titles)),
		Abstract:        strings.TrimSpace(first(dc.Descriptions)),
		Authors:         extractAuthors(dc.Creators),
		PrimaryCategory: primary,
		Categories:      categories,
		Date:            first(dc.Dates),
	}
}

func extractAuthors(creators []string) []Author {
	var authors []Author
	for _, name := range creators {
		if name == "" {
			continue
		}
		// oai_dc creators come as "Last, First"
		parts := strings.SplitN(name, ", ", 2)
		author := Author{LastName: parts[0]}
		if len(parts) == 2 {
			author.FirstName = parts[1]
		}
		authors = append(authors, author)
	}
	return authors
}

func extractCategories(subjects []string) []string {
	var categories []string
	for _, subject := range subjects {
		categories = append(categories, csCategories[subject])
	}
	return categories
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
