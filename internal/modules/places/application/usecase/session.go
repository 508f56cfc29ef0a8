package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"placesWs/internal/modules/places/application/port"
	"placesWs/internal/modules/places/domain"
)

// RestaurantFinder is the slice of PlacesUseCase a session depends on.
type RestaurantFinder interface {
	Search(ctx context.Context, query, location string) ([]domain.Restaurant, error)
	FilterByCategory(ctx context.Context, category string) ([]domain.Restaurant, error)
	GetAll(ctx context.Context) ([]domain.Restaurant, error)
}

// StalePolicy decides what happens to a fetch that completes after a newer one was issued.
type StalePolicy string

const (
	// DiscardStale drops results whose generation is no longer the latest issued.
	DiscardStale StalePolicy = "discard-stale"
	// LastWriteWins applies every result in completion order.
	LastWriteWins StalePolicy = "last-write-wins"
)

// ParseStalePolicy accepts the textual policy names; blank means DiscardStale.
func ParseStalePolicy(raw string) (StalePolicy, error) {
	switch StalePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DiscardStale:
		return DiscardStale, nil
	case LastWriteWins:
		return LastWriteWins, nil
	default:
		return "", fmt.Errorf("unknown stale policy %q", raw)
	}
}

var (
	ErrUnknownRestaurant = errors.New("restaurant not in current results")
	ErrUnknownFilter     = errors.New("unknown filter")
)

// SessionConfig seeds a SessionController. Zero values fall back to defaults, except
// DefaultFilter where blank means no filter is active at start.
type SessionConfig struct {
	ID            string
	Location      string
	Filters       []domain.Filter
	DefaultFilter string
	Policy        StalePolicy
	Events        port.SearchEventPublisher
}

type fetchIntent struct {
	kind     string
	query    string
	category string
}

// SessionController owns one session's state and turns intents into fetches.
// Intents may be called from several goroutines; every state write happens under mu and
// listeners observe writes in the order they were made.
type SessionController struct {
	finder RestaurantFinder
	policy StalePolicy
	events port.SearchEventPublisher

	mu         sync.Mutex
	state      domain.SessionState
	generation uint64
	lastIntent fetchIntent
	hasLoaded  bool
	listeners  []func(domain.SessionState)
}

func NewSessionController(finder RestaurantFinder, cfg SessionConfig) *SessionController {
	id := strings.TrimSpace(cfg.ID)
	if id == "" {
		id = uuid.NewString()
	}
	location := cfg.Location
	if strings.TrimSpace(location) == "" {
		location = domain.DefaultLocation
	}
	filters := cfg.Filters
	if len(filters) == 0 {
		filters = domain.DefaultFilters()
	}
	policy := cfg.Policy
	if policy == "" {
		policy = DiscardStale
	}

	state := domain.SessionState{
		ID:          id,
		Status:      domain.StatusIdle,
		Location:    location,
		Filters:     append([]domain.Filter(nil), filters...),
		Restaurants: []domain.Restaurant{},
		Places:      []domain.Place{},
		Detent:      domain.DetentSmall,
		Region:      domain.DefaultRegion(),
	}
	if cfg.DefaultFilter != "" {
		if f, ok := domain.FindFilter(filters, "", cfg.DefaultFilter); ok {
			state.ActiveFilter = &f
		}
	}

	return &SessionController{
		finder: finder,
		policy: policy,
		events: cfg.Events,
		state:  state,
	}
}

// ID returns the session identifier.
func (s *SessionController) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ID
}

// OnChange registers a listener that receives a copy of the state after every write.
// Listeners run while the state lock is held: they must not block or call back into
// the controller.
func (s *SessionController) OnChange(fn func(domain.SessionState)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// State returns a copy of the current session state.
func (s *SessionController) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Load performs the initial fetch for the active filter, or the full catalog.
func (s *SessionController) Load(ctx context.Context) {
	s.execute(ctx, "load", func(st *domain.SessionState) fetchIntent {
		return intentForActiveFilter(st)
	})
}

// SubmitQuery searches for text. Blank text is ignored and leaves the state untouched.
func (s *SessionController) SubmitQuery(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		slog.Debug("session query ignored blank text", slog.String("sessionId", s.ID()))
		return
	}
	s.execute(ctx, "submit-query", func(st *domain.SessionState) fetchIntent {
		st.Query = text
		return fetchIntent{kind: domain.IntentSearch, query: text}
	})
}

// ToggleFilter activates filter, deactivates it when already active, or clears the
// active filter when filter has an empty title. The result set is then refetched.
func (s *SessionController) ToggleFilter(ctx context.Context, filter domain.Filter) {
	s.execute(ctx, "toggle-filter", func(st *domain.SessionState) fetchIntent {
		st.Focused = nil
		st.Detent = domain.DetentMedium
		switch {
		case filter.IsClear():
			st.ActiveFilter = nil
		case st.ActiveFilter != nil && st.ActiveFilter.ID == filter.ID:
			st.ActiveFilter = nil
		default:
			f := filter
			st.ActiveFilter = &f
		}
		return intentForActiveFilter(st)
	})
}

// ClearFilter drops the active filter and reloads the full catalog.
func (s *SessionController) ClearFilter(ctx context.Context) {
	s.ToggleFilter(ctx, domain.Filter{})
}

// Refresh repeats the fetch that produced the current results.
func (s *SessionController) Refresh(ctx context.Context) {
	s.execute(ctx, "refresh", func(st *domain.SessionState) fetchIntent {
		if s.lastIntent.kind != "" {
			return s.lastIntent
		}
		return intentForActiveFilter(st)
	})
}

// SelectRestaurant focuses r. It never fetches and never touches loading or error state.
func (s *SessionController) SelectRestaurant(r domain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	focused := domain.CloneRestaurants([]domain.Restaurant{r})[0]
	s.state.Focused = &focused
	s.state.Detent = domain.DetentSmall
	s.state.Region.CenterLatitude = r.Coordinate.Latitude
	s.state.Region.CenterLongitude = r.Coordinate.Longitude
	s.notifyLocked()
}

// SelectRestaurantByID focuses the restaurant with id from the current results.
func (s *SessionController) SelectRestaurantByID(id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return ErrUnknownRestaurant
	}
	s.mu.Lock()
	var (
		found domain.Restaurant
		ok    bool
	)
	for _, r := range s.state.Restaurants {
		if r.ID == parsed {
			found, ok = r, true
			break
		}
	}
	s.mu.Unlock()
	if !ok {
		return ErrUnknownRestaurant
	}
	s.SelectRestaurant(found)
	return nil
}

// ResolveFilter finds a filter of the session catalog by id or title.
func (s *SessionController) ResolveFilter(id, title string) (domain.Filter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := domain.FindFilter(s.state.Filters, id, title); ok {
		return f, nil
	}
	return domain.Filter{}, ErrUnknownFilter
}

// UpdateRegionCenter moves the map centre, keeping the current zoom.
func (s *SessionController) UpdateRegionCenter(latitude, longitude float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Region.CenterLatitude = latitude
	s.state.Region.CenterLongitude = longitude
	s.notifyLocked()
}

// DismissError clears the displayed error while keeping the current results.
func (s *SessionController) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Err == nil {
		return
	}
	s.clearErrorLocked()
	if !s.state.Loading {
		s.state.Status = domain.StatusIdle
		if s.hasLoaded {
			s.state.Status = domain.StatusLoaded
		}
	}
	s.notifyLocked()
}

func (s *SessionController) execute(ctx context.Context, name string, plan func(*domain.SessionState) fetchIntent) {
	s.mu.Lock()
	intent := plan(&s.state)
	s.generation++
	gen := s.generation
	s.lastIntent = intent
	location := s.state.Location
	s.state.Generation = gen
	s.state.Loading = true
	s.state.Status = domain.StatusLoading
	s.clearErrorLocked()
	sessionID := s.state.ID
	s.notifyLocked()
	s.mu.Unlock()

	slog.Debug("session fetch started", slog.String("sessionId", sessionID), slog.String("intent", name), slog.String("kind", intent.kind), slog.Uint64("generation", gen))

	started := time.Now()
	restaurants, err := s.fetch(ctx, intent, location)
	latency := time.Since(started)

	s.mu.Lock()
	stale := gen != s.generation
	if stale && s.policy == DiscardStale {
		latest := s.generation
		s.mu.Unlock()
		slog.Debug("session fetch discarded as stale", slog.String("sessionId", sessionID), slog.String("intent", name), slog.Uint64("generation", gen), slog.Uint64("latest", latest))
		s.publish(ctx, sessionID, intent, location, gen, len(restaurants), err, latency, true)
		return
	}

	s.state.Loading = false
	if err != nil {
		s.state.Status = domain.StatusErrored
		s.state.Err = err
		s.state.ErrorMessage = domain.UserMessage(err)
		s.state.ErrorKind = domain.Kind(err)
	} else {
		if intent.kind == domain.IntentSearch && s.state.ActiveFilter != nil {
			restaurants = domain.FilterByCategory(restaurants, s.state.ActiveFilter.Category())
		}
		s.state.Restaurants = restaurants
		s.state.Places = domain.ProjectPlaces(restaurants)
		s.state.Status = domain.StatusLoaded
		s.hasLoaded = true
	}
	count := len(s.state.Restaurants)
	s.notifyLocked()
	s.mu.Unlock()

	if err != nil {
		slog.Warn("session fetch failed", slog.String("sessionId", sessionID), slog.String("intent", name), slog.Uint64("generation", gen), slog.Any("error", err))
		count = 0
	} else {
		slog.Info("session fetch applied", slog.String("sessionId", sessionID), slog.String("intent", name), slog.Uint64("generation", gen), slog.Int("count", count), slog.Bool("stale", stale))
	}
	s.publish(ctx, sessionID, intent, location, gen, count, err, latency, stale)
}

func (s *SessionController) fetch(ctx context.Context, intent fetchIntent, location string) ([]domain.Restaurant, error) {
	switch intent.kind {
	case domain.IntentSearch:
		return s.finder.Search(ctx, intent.query, location)
	case domain.IntentFilter:
		return s.finder.FilterByCategory(ctx, intent.category)
	default:
		return s.finder.GetAll(ctx)
	}
}

func (s *SessionController) publish(ctx context.Context, sessionID string, intent fetchIntent, location string, gen uint64, count int, err error, latency time.Duration, stale bool) {
	if s.events == nil {
		return
	}
	event := domain.SearchEvent{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Intent:      intent.kind,
		Query:       intent.query,
		Location:    location,
		Category:    intent.category,
		ResultCount: count,
		LatencyMs:   latency.Milliseconds(),
		ErrorKind:   domain.Kind(err),
		Generation:  gen,
		Stale:       stale,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		slog.Warn("session search event publish failed", slog.String("sessionId", sessionID), slog.Any("error", err))
	}
}

func (s *SessionController) clearErrorLocked() {
	s.state.Err = nil
	s.state.ErrorMessage = ""
	s.state.ErrorKind = ""
}

func (s *SessionController) notifyLocked() {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := s.state.Clone()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}

func intentForActiveFilter(st *domain.SessionState) fetchIntent {
	if st.ActiveFilter != nil {
		return fetchIntent{kind: domain.IntentFilter, category: st.ActiveFilter.Title}
	}
	return fetchIntent{kind: domain.IntentAll}
}
