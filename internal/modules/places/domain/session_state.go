package domain

// DefaultLocation is the location label a session starts with.
const DefaultLocation = "Dubai - United Arab Emirates"

// SessionStatus is the lifecycle stage of a session's result set.
type SessionStatus string

const (
	StatusIdle    SessionStatus = "idle"
	StatusLoading SessionStatus = "loading"
	StatusLoaded  SessionStatus = "loaded"
	StatusErrored SessionStatus = "errored"
)

// SheetDetent is the bottom sheet height requested by the last intent.
type SheetDetent string

const (
	DetentSmall  SheetDetent = "small"
	DetentMedium SheetDetent = "medium"
	DetentLarge  SheetDetent = "large"
)

// MapRegion describes the visible map area.
type MapRegion struct {
	CenterLatitude  float64 `json:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude"`
	LatitudeDelta   float64 `json:"latitudeDelta"`
	LongitudeDelta  float64 `json:"longitudeDelta"`
}

// DefaultRegion is centred on Dubai.
func DefaultRegion() MapRegion {
	return MapRegion{CenterLatitude: 25.2048, CenterLongitude: 55.2708, LatitudeDelta: 0.05, LongitudeDelta: 0.05}
}

// SessionState is everything a session controller owns. Only the controller writes it.
type SessionState struct {
	ID           string        `json:"sessionId"`
	Status       SessionStatus `json:"status"`
	Query        string        `json:"query"`
	Location     string        `json:"location"`
	Filters      []Filter      `json:"filters"`
	ActiveFilter *Filter       `json:"activeFilter,omitempty"`
	Restaurants  []Restaurant  `json:"restaurants"`
	Places       []Place       `json:"places"`
	Focused      *Restaurant   `json:"focused,omitempty"`
	Loading      bool          `json:"loading"`
	Err          error         `json:"-"`
	ErrorMessage string        `json:"error,omitempty"`
	ErrorKind    string        `json:"errorKind,omitempty"`
	Detent       SheetDetent   `json:"detent"`
	Region       MapRegion     `json:"region"`
	Generation   uint64        `json:"generation"`
}

// Clone returns a copy that shares no mutable memory with s.
func (s SessionState) Clone() SessionState {
	out := s
	out.Filters = append([]Filter(nil), s.Filters...)
	out.Restaurants = CloneRestaurants(s.Restaurants)
	out.Places = append([]Place(nil), s.Places...)
	if s.ActiveFilter != nil {
		f := *s.ActiveFilter
		out.ActiveFilter = &f
	}
	if s.Focused != nil {
		r := CloneRestaurants([]Restaurant{*s.Focused})[0]
		out.Focused = &r
	}
	return out
}
