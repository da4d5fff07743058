// Package adminview holds the process-wide configuration the management
// surface reads to render its list screens: which columns each entity
// displays, which are filterable, which are searchable, and which are
// read-only. The table is populated once at process initialization and is
// read-only afterwards.
package adminview

import (
	"fmt"
	"sort"
	"sync"
)

// ModelView describes the management-surface configuration for one entity.
type ModelView struct {
	// Entity is the registry key, e.g. "account".
	Entity string
	// ListDisplay are the columns shown in the list screen, in order.
	ListDisplay []string
	// ListFilter are the columns offered as exact-match filters.
	ListFilter []string
	// SearchFields are the text columns covered by the search box.
	SearchFields []string
	// ReadOnlyFields are columns rendered but never editable.
	ReadOnlyFields []string
}

var (
	mu    sync.RWMutex
	views = make(map[string]ModelView)
)

// Register adds a view to the registry. Registering an empty entity name or
// the same entity twice is a programming error and panics, mirroring the
// fail-at-startup behavior of metric registration.
func Register(v ModelView) {
	if v.Entity == "" {
		panic("adminview: Register called with empty entity name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := views[v.Entity]; exists {
		panic(fmt.Sprintf("adminview: duplicate registration for entity %q", v.Entity))
	}
	views[v.Entity] = v
}

// View returns the configuration for entity. The returned value carries
// copies of the column lists, so callers cannot mutate the registry.
func View(entity string) (ModelView, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := views[entity]
	if !ok {
		return ModelView{}, false
	}
	return v.clone(), true
}

// All returns every registered view, sorted by entity name.
func All() []ModelView {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModelView, 0, len(views))
	for _, v := range views {
		out = append(out, v.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

func (v ModelView) clone() ModelView {
	c := v
	c.ListDisplay = append([]string(nil), v.ListDisplay...)
	c.ListFilter = append([]string(nil), v.ListFilter...)
	c.SearchFields = append([]string(nil), v.SearchFields...)
	c.ReadOnlyFields = append([]string(nil), v.ReadOnlyFields...)
	return c
}
