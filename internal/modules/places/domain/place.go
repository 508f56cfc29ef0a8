package domain

import "github.com/google/uuid"

// Place is the map projection of a Restaurant. ID mirrors the source restaurant.
type Place struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Subtitle   string     `json:"subtitle"`
	Coordinate Coordinate `json:"coordinate"`
	Categories []string   `json:"categories"`
}

// ProjectPlaces derives one Place per restaurant, preserving order.
func ProjectPlaces(restaurants []Restaurant) []Place {
	places := make([]Place, 0, len(restaurants))
	for _, r := range restaurants {
		places = append(places, Place{
			ID:         r.ID,
			Name:       r.Name,
			Subtitle:   r.CuisineType,
			Coordinate: r.Coordinate,
			Categories: append([]string(nil), r.Categories...),
		})
	}
	return places
}
