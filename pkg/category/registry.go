package category

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Registry enumerates the expense categories available for selection:
// the preconfigured defaults plus any custom category first seen on a
// submitted expense.
type Registry interface {
	All() []Category
	Lookup(label string) (Category, bool)
	Register(label string) Category
}

type RegistryImpl struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]Category
}

// NewRegistry creates a registry preloaded with the given default labels in
// order. Blank or duplicate defaults are skipped.
func NewRegistry(defaults []string) *RegistryImpl {
	r := &RegistryImpl{byKey: map[string]Category{}}
	for _, label := range defaults {
		if strings.TrimSpace(label) == "" {
			continue
		}
		r.Register(label)
	}
	return r
}

// All returns every known category, defaults first, then custom categories in
// the order they were first seen.
func (r *RegistryImpl) All() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := make([]Category, 0, len(r.order))
	for _, key := range r.order {
		categories = append(categories, r.byKey[key])
	}
	return categories
}

// Lookup finds the registered category matching label, if any. Matching uses
// the normalized key, so casing and surrounding whitespace are ignored.
func (r *RegistryImpl) Lookup(label string) (Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byKey[Normalize(label)]
	return c, ok
}

// Register records label as an available category. The first label seen for a
// key becomes its display form; registering the same category again is a
// no-op returning the existing entry.
func (r *RegistryImpl) Register(label string) Category {
	key := Normalize(label)
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byKey[key]; ok {
		return existing
	}
	c := Category{Key: key, Label: strings.TrimSpace(label)}
	r.byKey[key] = c
	r.order = append(r.order, key)
	log.Debugf("registered category %q", c.Label)
	return c
}
