package domain

// SearchCommand is the websocket payload for a free-text query submission.
type SearchCommand struct {
	Query string `json:"query"`
}

// ToggleFilterCommand selects a filter by id or title. Both empty clears the active filter.
type ToggleFilterCommand struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SelectRestaurantCommand focuses a restaurant from the current results.
type SelectRestaurantCommand struct {
	ID string `json:"id"`
}

// UpdateRegionCommand recentres the map.
type UpdateRegionCommand struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
