package domain

import "testing"

func TestDefaultFiltersCatalog(t *testing.T) {
	filters := DefaultFilters()
	titles := []string{"Sort", "Cuisines", "brunch", "Distance", "Rating 4.0+"}
	if len(filters) != len(titles) {
		t.Fatalf("expected %d filters, got %d", len(titles), len(filters))
	}
	seen := map[string]struct{}{}
	for i, f := range filters {
		if f.Title != titles[i] {
			t.Fatalf("filter %d: expected %q, got %q", i, titles[i], f.Title)
		}
		if _, dup := seen[f.ID.String()]; dup {
			t.Fatalf("duplicate filter id %s", f.ID)
		}
		seen[f.ID.String()] = struct{}{}
	}
	if filters[0].Icon != "arrow.up.arrow.down" {
		t.Fatalf("unexpected sort icon %q", filters[0].Icon)
	}
	if !filters[1].HasDropdown || !filters[3].HasDropdown {
		t.Fatal("expected Cuisines and Distance to have dropdowns")
	}
}

func TestFindFilter(t *testing.T) {
	filters := DefaultFilters()

	byID, ok := FindFilter(filters, filters[3].ID.String(), "")
	if !ok || byID.Title != "Distance" {
		t.Fatalf("lookup by id failed: %+v", byID)
	}

	byTitle, ok := FindFilter(filters, "", " BRUNCH ")
	if !ok || byTitle.ID != filters[2].ID {
		t.Fatalf("lookup by title failed: %+v", byTitle)
	}

	byTitle, ok = FindFilter(filters, "not-a-uuid", "sort")
	if !ok || byTitle.Title != "Sort" {
		t.Fatalf("expected title fallback, got %+v", byTitle)
	}

	if _, ok := FindFilter(filters, "", "takeaway"); ok {
		t.Fatal("unexpected match for unknown title")
	}
}

func TestFilterCategoryAndClear(t *testing.T) {
	if got := NewFilter("Rating 4.0+", "", false).Category(); got != "rating 4.0+" {
		t.Fatalf("unexpected category key %q", got)
	}
	if !(Filter{}).IsClear() {
		t.Fatal("empty title filter should be the clear sentinel")
	}
}

func TestNewRestaurantRejectsBlankName(t *testing.T) {
	if _, ok := NewRestaurant(RestaurantSeed{Name: "   "}); ok {
		t.Fatal("expected blank name to be rejected")
	}
	a, _ := NewRestaurant(RestaurantSeed{Name: "A"})
	b, _ := NewRestaurant(RestaurantSeed{Name: "A"})
	if a.ID == b.ID {
		t.Fatal("expected distinct generated identities")
	}
}

func TestProjectPlaces(t *testing.T) {
	r := fixture("Pierchic", 4.92, "Seafood restaurant", "Jumeirah Beach", "brunch")
	r.Coordinate = Coordinate{Latitude: 25.218, Longitude: 55.268}

	places := ProjectPlaces([]Restaurant{r})
	if len(places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(places))
	}
	p := places[0]
	if p.ID != r.ID || p.Name != "Pierchic" || p.Subtitle != "Seafood restaurant" {
		t.Fatalf("unexpected projection: %+v", p)
	}
	if p.Coordinate != r.Coordinate {
		t.Fatalf("coordinate mismatch: %+v", p.Coordinate)
	}
	if len(ProjectPlaces(nil)) != 0 {
		t.Fatal("expected empty projection for empty input")
	}
}
