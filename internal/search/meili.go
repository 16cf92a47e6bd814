package search

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"

	"folio/api/internal/logger"
)

const idxPortfolios = "folio_portfolios"

// Meili implements Searcher via Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	done    chan struct{}
}

// NewMeili creates a Meilisearch client and configures the portfolio index.
// The client starts unhealthy if the initial connection fails; the health
// loop picks it up once the server comes back.
func NewMeili(url, apiKey string) *Meili {
	client := meili.New(url, meili.WithAPIKey(apiKey))

	m := &Meili{
		client: client,
		done:   make(chan struct{}),
	}

	if _, err := client.Health(); err != nil {
		logger.Sugar.Warnf("search: meilisearch unavailable at %s: %v", url, err)
		m.healthy.Store(false)
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{
		Uid:        idxPortfolios,
		PrimaryKey: "id",
	}); err != nil {
		logger.Sugar.Warnf("search: create index %s (may already exist): %v", idxPortfolios, err)
	}

	index := m.client.Index(idxPortfolios)
	searchable := []string{"username", "name", "title", "description", "services", "posts"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		logger.Sugar.Warnf("search: update searchable attrs for %s: %v", idxPortfolios, err)
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				logger.Sugar.Infof("search: meilisearch recovered, reconfiguring index")
				m.configureIndex()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search queries the portfolio index.
func (m *Meili) Search(q Query) ([]Result, int, error) {
	if !m.healthy.Load() {
		return nil, 0, fmt.Errorf("meilisearch unhealthy")
	}

	limit := int64(q.Limit)
	if limit == 0 {
		limit = 20
	}

	resp, err := m.client.Index(idxPortfolios).Search(q.Text, &meili.SearchRequest{
		Limit:                 limit,
		Offset:                int64(q.Offset),
		AttributesToHighlight: []string{"*"},
		HighlightPreTag:       "<mark>",
		HighlightPostTag:      "</mark>",
	})
	if err != nil {
		m.healthy.Store(false)
		return nil, 0, fmt.Errorf("meilisearch search: %w", err)
	}

	var results []Result
	for _, hit := range resp.Hits {
		results = append(results, hitToResult(hit))
	}
	return results, int(resp.EstimatedTotalHits), nil
}

func hitToResult(hit meili.Hit) Result {
	r := Result{}
	r.OwnerID = decodeString(hit, "id")
	r.Username = decodeString(hit, "username")
	r.Name = decodeString(hit, "name")
	r.Title = firstNonBlank(decodeFormattedString(hit, "title"), decodeString(hit, "title"))
	r.Snippet = firstNonBlank(decodeFormattedString(hit, "description"), decodeString(hit, "description"))
	return r
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func decodeFormattedString(hit meili.Hit, key string) string {
	raw, ok := hit["_formatted"]
	if !ok {
		return ""
	}
	var formatted map[string]json.RawMessage
	if err := json.Unmarshal(raw, &formatted); err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(formatted[key], &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// IndexPortfolio adds or updates one portfolio in the search index.
func (m *Meili) IndexPortfolio(rec PortfolioRecord) error {
	_, err := m.client.Index(idxPortfolios).AddDocuments([]PortfolioRecord{rec}, nil)
	return err
}

// IndexPortfolios bulk-indexes portfolios.
func (m *Meili) IndexPortfolios(records []PortfolioRecord) error {
	if len(records) == 0 {
		return nil
	}
	_, err := m.client.Index(idxPortfolios).AddDocuments(records, nil)
	return err
}

// DeletePortfolio removes a portfolio from the search index.
func (m *Meili) DeletePortfolio(ownerID string) error {
	_, err := m.client.Index(idxPortfolios).DeleteDocument(ownerID, nil)
	return err
}
