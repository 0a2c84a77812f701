// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/domain/search"
	"github.com/jsamuelsen/ecotips/internal/ports"
)

// SearchObserver receives one observation per executed search.
// telemetry.SearchMetrics implements it.
type SearchObserver interface {
	ObserveSearch(hasText bool, filters, results int)
}

// TipService orchestrates the catalog use cases behind the JSON API.
// It depends on port interfaces, not concrete implementations.
type TipService struct {
	repo     ports.TipRepository
	observer SearchObserver
	logger   *slog.Logger
}

// TipServiceConfig contains the dependencies of the tip service.
type TipServiceConfig struct {
	Repo     ports.TipRepository
	Observer SearchObserver // optional
	Logger   *slog.Logger   // optional, defaults to slog.Default()
}

// NewTipService creates a tip service. It panics if cfg.Repo is nil.
func NewTipService(cfg TipServiceConfig) *TipService {
	if cfg.Repo == nil {
		panic("app: NewTipService requires a TipRepository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TipService{
		repo:     cfg.Repo,
		observer: cfg.Observer,
		logger:   logger.With(slog.String("component", "app.TipService")),
	}
}

// List returns the full collection in catalog order.
func (s *TipService) List(ctx context.Context) []domain.Tip {
	return s.repo.GetAll(ctx)
}

// Get returns a single tip. Unknown ids yield a *domain.NotFoundError.
func (s *TipService) Get(ctx context.Context, id int) (domain.Tip, error) {
	tip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.DebugContext(ctx, "tip lookup failed",
			slog.Int("tip_id", id),
			slog.Any("error", err),
		)

		return domain.Tip{}, err
	}

	return tip, nil
}

// ByCategory returns the tips of one category. The category is normalized first,
// so "Zero Waste" and "zero-waste" are equivalent.
func (s *TipService) ByCategory(ctx context.Context, category string) []domain.Tip {
	return s.repo.GetByCategory(ctx, category)
}

// Search runs q over the full collection.
func (s *TipService) Search(ctx context.Context, q search.Query) []domain.Tip {
	results := search.Apply(s.repo.GetAll(ctx), q)

	filters := countFilters(q)

	s.logger.DebugContext(ctx, "search executed",
		slog.String("text", q.Text()),
		slog.Int("filters", filters),
		slog.Int("results", len(results)),
	)

	if s.observer != nil {
		s.observer.ObserveSearch(q.Text() != "", filters, len(results))
	}

	return results
}

// Related returns up to limit other tips sharing the category of tip id.
func (s *TipService) Related(ctx context.Context, id, limit int) ([]domain.Tip, error) {
	tip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading tip %d: %w", id, err)
	}

	return search.Related(s.repo.GetByCategory(ctx, tip.Category), id, limit), nil
}

// Summary aggregates the impact of the full collection.
func (s *TipService) Summary(ctx context.Context) domain.ImpactSummary {
	return domain.Summarize(s.repo.GetAll(ctx))
}

func countFilters(q search.Query) int {
	n := 0

	for _, v := range []string{q.Category(), q.Difficulty(), q.Impact()} {
		if v != "" {
			n++
		}
	}

	return n
}
