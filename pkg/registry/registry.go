package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

// Registry stores items by name
type Registry[T any] interface {
	// Register adds an item, failing if the name is taken
	Register(name string, item T) error

	// Set adds or replaces an item
	Set(name string, item T) error

	// Get retrieves an item
	Get(name string) (T, error)

	// Remove removes an item
	Remove(name string) error

	// List returns all registered names, sorted
	List() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}
	return nil
}

func (r *registry[T]) Register(name string, item T) error {
	if err := validName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered", name).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Set(name string, item T) error {
	if err := validName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%s' is not registered", name).
			WithDetail("name", name)
	}

	return item, nil
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "'%s' is not registered", name).
			WithDetail("name", name)
	}

	delete(r.items, name)
	return nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Used while building static catalogues, where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet retrieves an item and panics if not found
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
