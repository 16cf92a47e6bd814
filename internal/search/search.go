package search

import (
	"folio/api/internal/content"
)

// Result is a single portfolio hit returned to the caller.
type Result struct {
	OwnerID  string `json:"ownerId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
}

// Query describes a portfolio search request.
type Query struct {
	Text   string
	Limit  int
	Offset int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Searcher can execute a full-text search over portfolios.
type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

// PortfolioRecord is the data we index per portfolio.
type PortfolioRecord struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	Posts       []string `json:"posts"`
}

// NewPortfolioRecord flattens the searchable parts of a content document
// into an index record.
func NewPortfolioRecord(ownerID, username, name string, doc content.Document) PortfolioRecord {
	rec := PortfolioRecord{
		ID:       ownerID,
		Username: username,
		Name:     name,
	}
	rec.Title = firstNonBlank(
		sectionString(doc, "seo", "metaTitle"),
		sectionString(doc, "hero", "titleLine1"),
	)
	rec.Description = firstNonBlank(
		sectionString(doc, "about", "description"),
		sectionString(doc, "seo", "metaDescription"),
	)
	rec.Services = listField(doc, "services", "cards", "title")
	rec.Posts = listField(doc, "blog", "posts", "title")
	return rec
}

func sectionString(doc content.Document, section, field string) string {
	sec, ok := doc[section]
	if !ok {
		return ""
	}
	s, _ := sec[field].(string)
	return s
}

func listField(doc content.Document, section, list, field string) []string {
	sec, ok := doc[section]
	if !ok {
		return nil
	}
	items, ok := sec[list].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := record[field].(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
