package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultFilterTitle names the filter that is active when a session starts.
const DefaultFilterTitle = "brunch"

// Filter is a selectable category chip. Its lower-cased title is the category match key.
// HasDropdown only matters to presentation layers.
type Filter struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon,omitempty"`
	HasDropdown bool      `json:"hasDropdown"`
}

func NewFilter(title, icon string, hasDropdown bool) Filter {
	return Filter{ID: uuid.New(), Title: title, Icon: icon, HasDropdown: hasDropdown}
}

// IsClear reports whether the filter is the "clear" sentinel (empty title).
func (f Filter) IsClear() bool {
	return f.Title == ""
}

// Category returns the category key used for matching.
func (f Filter) Category() string {
	return strings.ToLower(f.Title)
}

// DefaultFilters returns a fresh copy of the session filter catalog, in display order.
func DefaultFilters() []Filter {
	return []Filter{
		NewFilter("Sort", "arrow.up.arrow.down", false),
		NewFilter("Cuisines", "", true),
		NewFilter(DefaultFilterTitle, "", false),
		NewFilter("Distance", "", true),
		NewFilter("Rating 4.0+", "", false),
	}
}

// FindFilter looks a filter up by id first, then by case-insensitive title.
func FindFilter(filters []Filter, id, title string) (Filter, bool) {
	if id = strings.TrimSpace(id); id != "" {
		if parsed, err := uuid.Parse(id); err == nil {
			for _, f := range filters {
				if f.ID == parsed {
					return f, true
				}
			}
		}
	}
	if title = strings.TrimSpace(title); title != "" {
		for _, f := range filters {
			if strings.EqualFold(f.Title, title) {
				return f, true
			}
		}
	}
	return Filter{}, false
}
