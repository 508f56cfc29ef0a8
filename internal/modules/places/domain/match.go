package domain

import "strings"

// NormalizeQuery trims and case-folds free text before matching.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// MatchesQuery reports whether query is a case-insensitive substring of the name,
// cuisine type, area or any category of r. An empty query matches everything.
func MatchesQuery(r Restaurant, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.CuisineType), q) ||
		strings.Contains(strings.ToLower(r.Area), q) {
		return true
	}
	for _, category := range r.Categories {
		if strings.Contains(strings.ToLower(category), q) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether category is one of r's categories, ignoring case.
// An empty category matches nothing.
func MatchesCategory(r Restaurant, category string) bool {
	if category == "" {
		return false
	}
	for _, c := range r.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// FilterByQuery keeps the restaurants matching query, in input order.
func FilterByQuery(restaurants []Restaurant, query string) []Restaurant {
	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if MatchesQuery(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory keeps the restaurants tagged with category, in input order.
func FilterByCategory(restaurants []Restaurant, category string) []Restaurant {
	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if MatchesCategory(r, category) {
			out = append(out, r)
		}
	}
	return out
}
