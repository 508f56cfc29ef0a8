package usecase

import (
	"context"
	"errors"
	"testing"

	"placesWs/internal/modules/places/domain"
)

func TestPlacesUseCase_SearchRejectsBlankQueryBeforeFetching(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository(testCatalog())
	uc := NewPlacesUseCase(repo)

	for _, query := range []string{"", "   ", "\t"} {
		_, err := uc.Search(context.Background(), query, "Dubai")
		if !errors.Is(err, domain.ErrInvalidQuery) {
			t.Fatalf("Search(%q): expected ErrInvalidQuery, got %v", query, err)
		}
	}
	if repo.callCount() != 0 {
		t.Fatalf("repository should not be called, got %d calls", repo.callCount())
	}
}

func TestPlacesUseCase_FilterRejectsEmptyCategoryBeforeFetching(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository(testCatalog())
	uc := NewPlacesUseCase(repo)

	_, err := uc.FilterByCategory(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if repo.callCount() != 0 {
		t.Fatalf("repository should not be called, got %d calls", repo.callCount())
	}
}

func TestPlacesUseCase_FilterRanksByRating(t *testing.T) {
	t.Parallel()

	uc := NewPlacesUseCase(newFakeRepository(testCatalog()))

	got, err := uc.FilterByCategory(context.Background(), "brunch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{
		"Pierchic",
		"Nobu Dubai",
		"Entrecôte Café de Paris - The Dubai Mall",
		"Akira Back Dubai",
		"Zuma Dubai",
		"La Petite Maison",
	}
	if !sameNames(got, expected...) {
		t.Fatalf("expected %v, got %v", expected, restaurantNames(got))
	}
}

func TestPlacesUseCase_SearchMatchesCuisineAndRanks(t *testing.T) {
	t.Parallel()

	uc := NewPlacesUseCase(newFakeRepository(testCatalog()))

	got, err := uc.Search(context.Background(), "japanese", "Dubai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameNames(got, "Nobu Dubai", "Zuma Dubai") {
		t.Fatalf("unexpected results: %v", restaurantNames(got))
	}
}

func TestPlacesUseCase_SearchUnknownReturnsEmptyWithoutError(t *testing.T) {
	t.Parallel()

	uc := NewPlacesUseCase(newFakeRepository(testCatalog()))

	got, err := uc.Search(context.Background(), "pizza", "")
	if err != nil {
		t.Fatalf("empty results must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %v", restaurantNames(got))
	}

	got, err = uc.FilterByCategory(context.Background(), "takeaway")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result for unknown category, got %v / %v", restaurantNames(got), err)
	}
}

func TestPlacesUseCase_GetAllPassesBlankQueryAndLocation(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository(testCatalog())
	uc := NewPlacesUseCase(repo)

	got, err := uc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected full catalog, got %d", len(got))
	}
	if got[0].Name != "Pierchic" || got[len(got)-1].Name != "Al Hadheerah" {
		t.Fatalf("unexpected ranking: %v", restaurantNames(got))
	}
	if len(repo.location) != 1 || repo.location[0] != "" {
		t.Fatalf("expected blank location, got %v", repo.location)
	}
}

func TestPlacesUseCase_PropagatesRepositoryErrorUnchanged(t *testing.T) {
	t.Parallel()

	expected := errors.New("offline")
	repo := newFakeRepository(testCatalog())
	repo.setErr(expected)
	uc := NewPlacesUseCase(repo)

	if _, err := uc.Search(context.Background(), "nobu", ""); err != expected {
		t.Fatalf("search: expected %v unchanged, got %v", expected, err)
	}
	if _, err := uc.FilterByCategory(context.Background(), "brunch"); err != expected {
		t.Fatalf("filter: expected %v unchanged, got %v", expected, err)
	}
	if _, err := uc.GetAll(context.Background()); err != expected {
		t.Fatalf("get-all: expected %v unchanged, got %v", expected, err)
	}
}
