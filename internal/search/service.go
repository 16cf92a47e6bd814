package search

import (
	"context"

	"folio/api/internal/logger"
)

// Service is the facade that tries Meilisearch first and falls back to PG FTS.
type Service struct {
	meili *Meili
	pgfts *PgFTS
}

// NewService creates a search service. meili may be nil if Meilisearch is not configured.
func NewService(meili *Meili, pgfts *PgFTS) *Service {
	return &Service{meili: meili, pgfts: pgfts}
}

// Search tries Meilisearch if healthy, otherwise falls back to PG FTS.
func (s *Service) Search(q Query) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		logger.Sugar.Warnf("search: meilisearch error, falling back to pgfts: %v", err)
	}

	results, total, err := s.pgfts.Search(q)
	if err != nil {
		logger.Sugar.Warnf("search: pgfts error: %v", err)
		return Response{Results: []Result{}, Total: 0, Query: q.Text}
	}
	return Response{Results: nonNil(results), Total: total, Query: q.Text}
}

// IndexPortfolio indexes one portfolio (fire-and-forget to Meilisearch).
func (s *Service) IndexPortfolio(rec PortfolioRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexPortfolio(rec); err != nil {
			logger.Sugar.Warnf("search: index portfolio %s: %v", rec.ID, err)
		}
	}()
}

// DeletePortfolio removes a portfolio from the search index (fire-and-forget).
func (s *Service) DeletePortfolio(ownerID string) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.DeletePortfolio(ownerID); err != nil {
			logger.Sugar.Warnf("search: delete portfolio %s: %v", ownerID, err)
		}
	}()
}

// ReindexAllFromPG reads every portfolio from Postgres and pushes it to
// Meilisearch. Called at startup when Meilisearch is healthy.
func (s *Service) ReindexAllFromPG(ctx context.Context) {
	if s.meili == nil || !s.meili.Healthy() || s.pgfts == nil {
		return
	}
	records, err := s.pgfts.LoadAllRecords(ctx)
	if err != nil {
		logger.Sugar.Warnf("search: reindex load failed: %v", err)
		return
	}
	if len(records) == 0 {
		return
	}
	if err := s.meili.IndexPortfolios(records); err != nil {
		logger.Sugar.Warnf("search: reindex portfolios: %v", err)
	}
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}
