package infrastructure

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"placesWs/internal/modules/places/domain"
)

// ErrEmptyCatalog is returned when a seed file holds no restaurants.
var ErrEmptyCatalog = errors.New("catalog has no restaurants")

type catalogFile struct {
	Restaurants []domain.RestaurantSeed `yaml:"restaurants"`
}

// DefaultCatalog returns the built-in Dubai catalog with fresh identities.
func DefaultCatalog() []domain.Restaurant {
	seeds := []domain.RestaurantSeed{
		{
			Name:        "Entrecôte Café de Paris - The Dubai Mall",
			Rating:      4.87,
			CuisineType: "African restaurant",
			Area:        "Jumeriah",
			IsOpen:      true,
			ClosingTime: "3AM",
			Distance:    "300 m",
			Coordinate:  domain.Coordinate{Latitude: 25.1972, Longitude: 55.2744},
			Images:      []string{"restaurant1_1", "restaurant1_2", "restaurant1_3"},
			Review:      "The food and the ambience was amazing",
			Categories:  []string{"brunch", "African", "Indian"},
		},
		{
			Name:        "Akira Back Dubai",
			Rating:      4.87,
			CuisineType: "African restaurant",
			Area:        "Jumeriah",
			IsOpen:      true,
			ClosingTime: "3AM",
			Distance:    "300 m",
			Coordinate:  domain.Coordinate{Latitude: 25.2100, Longitude: 55.2750},
			Images:      []string{"restaurant2_1", "restaurant2_2", "restaurant2_3"},
			Review:      "The food and the ambience was amazing",
			Categories:  []string{"brunch", "African", "Indian"},
		},
		{
			Name:        "Nobu Dubai",
			Rating:      4.9,
			CuisineType: "Japanese restaurant",
			Area:        "Downtown Dubai",
			IsOpen:      true,
			ClosingTime: "2AM",
			Distance:    "450 m",
			Coordinate:  domain.Coordinate{Latitude: 25.2000, Longitude: 55.2800},
			Images:      []string{"restaurant3_1", "restaurant3_2", "restaurant3_3"},
			Review:      "Outstanding experience with exceptional service",
			Categories:  []string{"brunch", "Japanese", "Indian"},
		},
		{
			Name:        "La Petite Maison",
			Rating:      4.75,
			CuisineType: "French restaurant",
			Area:        "DIFC",
			IsOpen:      true,
			ClosingTime: "12AM",
			Distance:    "1.2 km",
			Coordinate:  domain.Coordinate{Latitude: 25.2150, Longitude: 55.2650},
			Images:      []string{"restaurant4_1", "restaurant4_2", "restaurant4_3"},
			Review:      "Authentic French cuisine at its finest",
			Categories:  []string{"brunch", "French", "Indian"},
		},
		{
			Name:        "Zuma Dubai",
			Rating:      4.85,
			CuisineType: "Japanese restaurant",
			Area:        "DIFC",
			IsOpen:      true,
			ClosingTime: "1AM",
			Distance:    "800 m",
			Coordinate:  domain.Coordinate{Latitude: 25.2080, Longitude: 55.2820},
			Images:      []string{"restaurant5_1", "restaurant5_2", "restaurant5_3"},
			Review:      "Contemporary Japanese izakaya dining",
			Categories:  []string{"brunch", "Japanese", "Indian"},
		},
		{
			Name:        "Pierchic",
			Rating:      4.92,
			CuisineType: "Seafood restaurant",
			Area:        "Jumeirah Beach",
			IsOpen:      true,
			ClosingTime: "11PM",
			Distance:    "2.1 km",
			Coordinate:  domain.Coordinate{Latitude: 25.2180, Longitude: 55.2680},
			Images:      []string{"restaurant6_1", "restaurant6_2", "restaurant6_3"},
			Review:      "Stunning waterfront dining experience",
			Categories:  []string{"brunch", "Seafood", "Indian"},
		},
	}
	catalog, _ := buildCatalog(seeds)
	return catalog
}

// LoadCatalogFile reads restaurants from a YAML seed file of the form
// `restaurants: [{name: ..., rating: ..., cuisine_type: ..., categories: [...]}]`.
func LoadCatalogFile(path string) ([]domain.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML seed document.
func ParseCatalog(data []byte) ([]domain.Restaurant, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Restaurants) == 0 {
		return nil, ErrEmptyCatalog
	}
	return buildCatalog(file.Restaurants)
}

// LoadCatalog returns the seed file's restaurants when path is set, else DefaultCatalog.
func LoadCatalog(path string) ([]domain.Restaurant, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(path)
}

func buildCatalog(seeds []domain.RestaurantSeed) ([]domain.Restaurant, error) {
	catalog := make([]domain.Restaurant, 0, len(seeds))
	for i, seed := range seeds {
		r, ok := domain.NewRestaurant(seed)
		if !ok {
			return nil, fmt.Errorf("catalog entry %d: missing name", i)
		}
		catalog = append(catalog, r)
	}
	return catalog, nil
}
