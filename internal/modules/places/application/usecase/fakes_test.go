package usecase

import (
	"context"
	"sync"

	"placesWs/internal/modules/places/domain"
)

type fakeRepository struct {
	mu       sync.Mutex
	catalog  []domain.Restaurant
	err      error
	calls    []string
	gates    map[string]chan struct{}
	started  chan string
	location []string
}

func newFakeRepository(catalog []domain.Restaurant) *fakeRepository {
	return &fakeRepository{
		catalog: catalog,
		gates:   make(map[string]chan struct{}),
		started: make(chan string, 4),
	}
}

// block makes fetches for key wait until the returned channel is closed.
// key is the raw query for searches and "category:<name>" for filter fetches.
func (r *fakeRepository) block(key string) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := make(chan struct{})
	r.gates[key] = gate
	return gate
}

func (r *fakeRepository) setErr(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *fakeRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *fakeRepository) wait(ctx context.Context, key string) error {
	r.mu.Lock()
	r.calls = append(r.calls, key)
	gate := r.gates[key]
	err := r.err
	r.mu.Unlock()

	if gate != nil {
		r.started <- key
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (r *fakeRepository) FetchRestaurants(ctx context.Context, query, location string) ([]domain.Restaurant, error) {
	r.mu.Lock()
	r.location = append(r.location, location)
	r.mu.Unlock()
	if err := r.wait(ctx, query); err != nil {
		return nil, err
	}
	return domain.FilterByQuery(r.catalog, domain.NormalizeQuery(query)), nil
}

func (r *fakeRepository) FetchByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	if err := r.wait(ctx, "category:"+category); err != nil {
		return nil, err
	}
	return domain.FilterByCategory(r.catalog, category), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.SearchEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.SearchEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	return nil
}

func (p *recordingPublisher) snapshot() []domain.SearchEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.SearchEvent(nil), p.events...)
}

func seed(name string, rating float64, cuisine, area string, categories ...string) domain.Restaurant {
	r, ok := domain.NewRestaurant(domain.RestaurantSeed{
		Name:        name,
		Rating:      rating,
		CuisineType: cuisine,
		Area:        area,
		IsOpen:      true,
		Categories:  categories,
	})
	if !ok {
		panic("invalid seed " + name)
	}
	return r
}

// testCatalog is pinned here so assertions never depend on production data.
func testCatalog() []domain.Restaurant {
	return []domain.Restaurant{
		seed("Entrecôte Café de Paris - The Dubai Mall", 4.87, "African restaurant", "Jumeriah", "brunch", "African", "Indian"),
		seed("Akira Back Dubai", 4.87, "African restaurant", "Jumeriah", "brunch", "African", "Indian"),
		seed("Nobu Dubai", 4.9, "Japanese restaurant", "Downtown Dubai", "brunch", "Japanese", "Indian"),
		seed("La Petite Maison", 4.75, "French restaurant", "DIFC", "brunch", "French", "Indian"),
		seed("Zuma Dubai", 4.85, "Japanese restaurant", "DIFC", "brunch", "Japanese", "Indian"),
		seed("Pierchic", 4.92, "Seafood restaurant", "Jumeirah Beach", "brunch", "Seafood", "Indian"),
		seed("Al Hadheerah", 4.6, "Emirati restaurant", "Dubai Desert", "dinner", "Emirati"),
	}
}

func restaurantNames(restaurants []domain.Restaurant) []string {
	out := make([]string, len(restaurants))
	for i, r := range restaurants {
		out[i] = r.Name
	}
	return out
}

func sameNames(got []domain.Restaurant, expected ...string) bool {
	if len(got) != len(expected) {
		return false
	}
	for i := range got {
		if got[i].Name != expected[i] {
			return false
		}
	}
	return true
}
