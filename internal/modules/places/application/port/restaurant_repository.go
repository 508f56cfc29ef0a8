package port

import (
	"context"

	"placesWs/internal/modules/places/domain"
)

// RestaurantRepository is the data source behind the places use case. Implementations
// may block and must honour ctx cancellation.
type RestaurantRepository interface {
	// FetchRestaurants returns the catalog when query is blank, else the matching subset.
	// location is reserved for geo-aware sources and does not affect matching.
	FetchRestaurants(ctx context.Context, query, location string) ([]domain.Restaurant, error)
	// FetchByCategory returns the restaurants tagged with category.
	FetchByCategory(ctx context.Context, category string) ([]domain.Restaurant, error)
}
