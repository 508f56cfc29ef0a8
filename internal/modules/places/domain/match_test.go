package domain

import (
	"strings"
	"testing"
)

func fixture(name string, rating float64, cuisine, area string, categories ...string) Restaurant {
	r, ok := NewRestaurant(RestaurantSeed{
		Name:        name,
		Rating:      rating,
		CuisineType: cuisine,
		Area:        area,
		Categories:  categories,
	})
	if !ok {
		panic("invalid fixture " + name)
	}
	return r
}

func TestMatchesQuery(t *testing.T) {
	t.Parallel()

	nobu := fixture("Nobu Dubai", 4.9, "Japanese restaurant", "Downtown Dubai", "brunch", "Japanese")

	cases := map[string]bool{
		"":           true,
		"nobu":       true,
		"NOBU":       true,
		"japanese":   true,
		"downtown":   true,
		"brun":       true,
		"seafood":    false,
		"difc":       false,
		"dubai":      true,
		"restaurant": true,
		" nobu":      false,
	}

	for query, expected := range cases {
		if got := MatchesQuery(nobu, query); got != expected {
			t.Fatalf("MatchesQuery(%q) = %v, expected %v", query, got, expected)
		}
	}
}

func TestMatchesQueryEmptyMatchesRestaurantWithoutCategories(t *testing.T) {
	t.Parallel()

	bare := fixture("Bare", 3, "", "")
	if !MatchesQuery(bare, "") {
		t.Fatal("empty query should match every restaurant")
	}
	if MatchesQuery(bare, "x") {
		t.Fatal("unexpected match on restaurant without searchable text")
	}
}

func TestMatchesQueryAgreesWithFieldDefinition(t *testing.T) {
	t.Parallel()

	restaurants := []Restaurant{
		fixture("Pierchic", 4.92, "Seafood restaurant", "Jumeirah Beach", "brunch", "Seafood"),
		fixture("La Petite Maison", 4.75, "French restaurant", "DIFC", "French"),
		fixture("Bare", 3, "", ""),
	}
	queries := []string{"", "p", "PIER", "beach", "french", "difc", "sea", "zzz", "Maison", "brunch"}

	for _, r := range restaurants {
		for _, q := range queries {
			fields := append([]string{r.Name, r.CuisineType, r.Area}, r.Categories...)
			expected := q == ""
			for _, field := range fields {
				if strings.Contains(strings.ToLower(field), strings.ToLower(q)) {
					expected = true
				}
			}
			if got := MatchesQuery(r, q); got != expected {
				t.Fatalf("MatchesQuery(%s, %q) = %v, expected %v", r.Name, q, got, expected)
			}
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	t.Parallel()

	zuma := fixture("Zuma Dubai", 4.85, "Japanese restaurant", "DIFC", "brunch", "Japanese", "Indian")

	cases := map[string]bool{
		"brunch":   true,
		"BRUNCH":   true,
		"japanese": true,
		"Indian":   true,
		"brun":     false,
		"":         false,
		"seafood":  false,
	}

	for category, expected := range cases {
		if got := MatchesCategory(zuma, category); got != expected {
			t.Fatalf("MatchesCategory(%q) = %v, expected %v", category, got, expected)
		}
	}
}

func TestFilterByCategoryPreservesOrderAndReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	input := []Restaurant{
		fixture("A", 1, "x", "y", "brunch"),
		fixture("B", 5, "x", "y", "dinner"),
		fixture("C", 3, "x", "y", "Brunch"),
	}

	got := FilterByCategory(input, "brunch")
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Fatalf("unexpected filter result: %+v", got)
	}

	none := FilterByCategory(input, "")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
	unknown := FilterByCategory(input, "unknown")
	if unknown == nil || len(unknown) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", unknown)
	}
}

func TestFilterByQueryEmptyReturnsAll(t *testing.T) {
	t.Parallel()

	input := []Restaurant{fixture("A", 1, "x", "y"), fixture("B", 2, "x", "y")}
	got := FilterByQuery(input, "")
	if len(got) != len(input) {
		t.Fatalf("expected %d restaurants, got %d", len(input), len(got))
	}
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	if got := NormalizeQuery("  JaPanese \t"); got != "japanese" {
		t.Fatalf("unexpected normalized query: %q", got)
	}
	if got := NormalizeQuery("   "); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
}
