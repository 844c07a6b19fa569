package collections

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/phrazzld/redlib-api/internal/config"
)

// SettingKey is the name of the setting holding the collections definition.
const SettingKey = "REDLIB_COLLECTIONS"

// Collection is a named alias for a set of subreddits.
type Collection struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// Registry holds the parsed collections. The setting is read and parsed
// once, on the first query; afterwards the mapping never changes and the
// registry is safe for concurrent use.
type Registry struct {
	settings config.SettingFunc
	logger   *slog.Logger

	once    sync.Once
	entries map[string]string
	sorted  []Collection
}

// NewRegistry returns a registry that reads SettingKey from settings on first
// use. A nil logger falls back to slog.Default().
func NewRegistry(settings config.SettingFunc, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		settings: settings,
		logger:   logger.With("component", "collections"),
	}
}

// FromString returns a registry already parsed from raw.
func FromString(raw string) *Registry {
	r := &Registry{logger: slog.Default().With("component", "collections")}
	r.once.Do(func() { r.build(&raw) })
	return r
}

// All returns every collection sorted by case-insensitive name. The returned
// slice is a copy and may be modified by the caller.
func (r *Registry) All() []Collection {
	r.init()
	return slices.Clone(r.sorted)
}

// Resolve returns the target for an alias. Matching is case-sensitive.
func (r *Registry) Resolve(name string) (string, bool) {
	r.init()
	target, ok := r.entries[name]
	return target, ok
}

// IsEmpty reports whether no collections are configured.
func (r *Registry) IsEmpty() bool {
	r.init()
	return len(r.entries) == 0
}

// Len returns the number of configured collections.
func (r *Registry) Len() int {
	r.init()
	return len(r.entries)
}

func (r *Registry) init() {
	r.once.Do(func() {
		var raw *string
		if r.settings != nil {
			if value, ok := r.settings(SettingKey); ok {
				raw = &value
			}
		}
		r.build(raw)
	})
}

func (r *Registry) build(raw *string) {
	r.entries = parse(raw, r.logger)

	sorted := make([]Collection, 0, len(r.entries))
	for name, target := range r.entries {
		sorted = append(sorted, Collection{Name: name, Target: target})
	}
	// Order by exact name first so names that only differ in case keep a
	// fixed relative order after the case-insensitive sort.
	slices.SortFunc(sorted, func(a, b Collection) int {
		return strings.Compare(a.Name, b.Name)
	})
	slices.SortStableFunc(sorted, func(a, b Collection) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	r.sorted = sorted

	r.logger.Debug("collections loaded", "count", len(r.entries))
}
