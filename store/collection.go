// store/collection.go
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FetchFunc loads the full page set for a collection from its list
// operation.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// MatchFunc reports whether a record matches a lowercased filter term.
type MatchFunc[T any] func(record T, term string) bool

// Collection is the paginated remote collection every list view is built
// on: one fetched page set, a client-side text filter applied over it, and
// pagination sliced from the filtered result. Server ordering is preserved;
// the collection never re-orders records.
type Collection[T any] struct {
	mu       sync.Mutex
	fetch    FetchFunc[T]
	match    MatchFunc[T]
	items    []T
	filter   string
	page     int
	pageSize int
}

// NewCollection creates a collection. pageSize must be positive.
func NewCollection[T any](fetch FetchFunc[T], match MatchFunc[T], pageSize int) *Collection[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Collection[T]{
		fetch:    fetch,
		match:    match,
		pageSize: pageSize,
	}
}

// MatchFields builds a MatchFunc from a display-field extractor: a record
// matches when any of its display fields contains the term,
// case-insensitively.
func MatchFields[T any](fields func(T) []string) MatchFunc[T] {
	return func(record T, term string) bool {
		for _, f := range fields(record) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Refetch reloads the collection from its list operation.
func (c *Collection[T]) Refetch(ctx context.Context) error {
	items, err := c.fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to refetch collection: %w", err)
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// BindTo registers the collection's refetch under the given tags so
// mutations invalidating those tags reload it automatically.
func (c *Collection[T]) BindTo(s *Store, tags ...Tag) {
	s.Register(c.Refetch, tags...)
}

// SetFilter replaces the text filter. Changing the filter resets the page
// index to 0 so the view never lands on an out-of-range empty page.
func (c *Collection[T]) SetFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if filter == c.filter {
		return
	}
	c.filter = filter
	c.page = 0
}

// Filter returns the active text filter.
func (c *Collection[T]) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetPage moves to the given page index, clamped to the filtered range.
func (c *Collection[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 0 {
		page = 0
	}
	if max := c.pageCountLocked() - 1; page > max && max >= 0 {
		page = max
	}
	c.page = page
}

// Page returns the current page index.
func (c *Collection[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the page size.
func (c *Collection[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// SetPageSize changes the page size and resets to the first page.
func (c *Collection[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageSize = size
	c.page = 0
}

// Len returns the unfiltered record count.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Filtered returns every record matching the active filter, in server
// order.
func (c *Collection[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

// Visible returns the current page of the filtered records.
func (c *Collection[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	start := c.page * c.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageCount returns the number of pages in the filtered set.
func (c *Collection[T]) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageCountLocked()
}

func (c *Collection[T]) filteredLocked() []T {
	if c.filter == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}
	term := strings.ToLower(c.filter)
	var out []T
	for _, item := range c.items {
		if c.match(item, term) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) pageCountLocked() int {
	filtered := c.filteredLocked()
	if len(filtered) == 0 {
		return 0
	}
	return (len(filtered) + c.pageSize - 1) / c.pageSize
}
