package infrastructure

import (
	"context"
	"log/slog"
	"time"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

// DefaultLatency stands in for the round trip of a future remote backend.
const DefaultLatency = time.Second

// MockRepository serves a fixed in-memory catalog after a simulated network delay.
// The catalog is read-only, so no locking is needed.
type MockRepository struct {
	catalog []domain.Restaurant
	latency time.Duration
}

// NewMockRepository copies catalog; a negative latency is treated as zero.
func NewMockRepository(catalog []domain.Restaurant, latency time.Duration) *MockRepository {
	if latency < 0 {
		latency = 0
	}
	return &MockRepository{catalog: domain.CloneRestaurants(catalog), latency: latency}
}

// Size returns the number of catalog entries.
func (r *MockRepository) Size() int {
	return len(r.catalog)
}

func (r *MockRepository) FetchRestaurants(ctx context.Context, query, location string) ([]domain.Restaurant, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	normalized := domain.NormalizeQuery(query)
	if normalized == "" {
		return domain.CloneRestaurants(r.catalog), nil
	}
	matches := domain.FilterByQuery(r.catalog, normalized)
	slog.Debug("mock repository search", slog.String("query", normalized), slog.String("location", location), slog.Int("matches", len(matches)))
	return domain.CloneRestaurants(matches), nil
}

func (r *MockRepository) FetchByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	matches := domain.FilterByCategory(r.catalog, category)
	slog.Debug("mock repository filter", slog.String("category", category), slog.Int("matches", len(matches)))
	return domain.CloneRestaurants(matches), nil
}

func (r *MockRepository) wait(ctx context.Context) error {
	if r.latency == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ port.RestaurantRepository = (*MockRepository)(nil)
