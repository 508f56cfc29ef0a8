package domain

import "sort"

// Rank returns a copy of restaurants sorted by rating, highest first. Equal ratings keep
// their input order.
func Rank(restaurants []Restaurant) []Restaurant {
	ranked := make([]Restaurant, len(restaurants))
	copy(ranked, restaurants)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	return ranked
}
