package usecase

import (
	"context"
	"log/slog"
	"strings"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

// PlacesUseCase validates requests, fetches from the repository and ranks the results.
// Repository errors are returned as-is.
type PlacesUseCase struct {
	repository port.RestaurantRepository
}

func NewPlacesUseCase(repository port.RestaurantRepository) *PlacesUseCase {
	return &PlacesUseCase{repository: repository}
}

// Search returns the restaurants matching query ranked by rating.
func (uc *PlacesUseCase) Search(ctx context.Context, query, location string) ([]domain.Restaurant, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidQuery
	}

	restaurants, err := uc.repository.FetchRestaurants(ctx, query, location)
	if err != nil {
		slog.Warn("places search fetch failed", slog.String("query", query), slog.Any("error", err))
		return nil, err
	}
	slog.Debug("places search fetched", slog.String("query", query), slog.Int("count", len(restaurants)))
	return domain.Rank(restaurants), nil
}

// FilterByCategory returns the restaurants tagged with category ranked by rating.
func (uc *PlacesUseCase) FilterByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	if category == "" {
		return nil, domain.ErrInvalidFilter
	}

	restaurants, err := uc.repository.FetchByCategory(ctx, category)
	if err != nil {
		slog.Warn("places filter fetch failed", slog.String("category", category), slog.Any("error", err))
		return nil, err
	}
	slog.Debug("places filter fetched", slog.String("category", category), slog.Int("count", len(restaurants)))
	return domain.Rank(restaurants), nil
}

// GetAll returns the whole catalog ranked by rating.
func (uc *PlacesUseCase) GetAll(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := uc.repository.FetchRestaurants(ctx, "", "")
	if err != nil {
		slog.Warn("places get-all fetch failed", slog.Any("error", err))
		return nil, err
	}
	return domain.Rank(restaurants), nil
}
