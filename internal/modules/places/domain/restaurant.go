package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Restaurant is a catalog record. Values are built once when the catalog loads and
// are never mutated afterwards.
type Restaurant struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Rating      float64    `json:"rating"`
	CuisineType string     `json:"cuisineType"`
	Area        string     `json:"area"`
	IsOpen      bool       `json:"isOpen"`
	ClosingTime string     `json:"closingTime"`
	Distance    string     `json:"distance"`
	Coordinate  Coordinate `json:"coordinate"`
	Images      []string   `json:"images"`
	Review      string     `json:"review"`
	Categories  []string   `json:"categories"`
}

// RestaurantSeed carries the user-suppliable fields of a restaurant. Identity is
// always generated by NewRestaurant.
type RestaurantSeed struct {
	Name        string     `yaml:"name"`
	Rating      float64    `yaml:"rating"`
	CuisineType string     `yaml:"cuisine_type"`
	Area        string     `yaml:"area"`
	IsOpen      bool       `yaml:"is_open"`
	ClosingTime string     `yaml:"closing_time"`
	Distance    string     `yaml:"distance"`
	Coordinate  Coordinate `yaml:"coordinate"`
	Images      []string   `yaml:"images"`
	Review      string     `yaml:"review"`
	Categories  []string   `yaml:"categories"`
}

// NewRestaurant assigns a fresh identity to seed. It returns false when the name is blank.
func NewRestaurant(seed RestaurantSeed) (Restaurant, bool) {
	name := strings.TrimSpace(seed.Name)
	if name == "" {
		return Restaurant{}, false
	}
	return Restaurant{
		ID:          uuid.New(),
		Name:        name,
		Rating:      seed.Rating,
		CuisineType: seed.CuisineType,
		Area:        seed.Area,
		IsOpen:      seed.IsOpen,
		ClosingTime: seed.ClosingTime,
		Distance:    seed.Distance,
		Coordinate:  seed.Coordinate,
		Images:      append([]string(nil), seed.Images...),
		Review:      seed.Review,
		Categories:  append([]string(nil), seed.Categories...),
	}, true
}

// CloneRestaurants copies the slice header and every nested slice so callers cannot
// reach the source's backing arrays.
func CloneRestaurants(items []Restaurant) []Restaurant {
	if items == nil {
		return nil
	}
	out := make([]Restaurant, len(items))
	for i, r := range items {
		r.Images = append([]string(nil), r.Images...)
		r.Categories = append([]string(nil), r.Categories...)
		out[i] = r
	}
	return out
}
