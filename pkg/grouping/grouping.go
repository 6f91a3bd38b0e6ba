// Package grouping provides date-bucketed grouping of arbitrary lists plus
// an incremental-reveal pager, shared by the history views.
package grouping

import (
	"sort"
	"time"

	"github.com/username/trip-itinerary/pkg/dateutil"
)

// Group is one calendar-day bucket of items.
type Group[T any] struct {
	Date  string
	Items []T
}

// GroupByDate groups items by calendar day, ascending by date. The selector
// returns the item's date; a zero time marks the item as dateless and it is
// skipped. Items within a day are time-ordered; equal timestamps preserve
// input order. A nil formatter falls back to the long Spanish date header.
func GroupByDate[T any](items []T, dateOf func(T) time.Time, formatter func(time.Time) string) []Group[T] {
	if len(items) == 0 {
		return []Group[T]{}
	}
	if formatter == nil {
		formatter = dateutil.FormatLongDate
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := dateOf(sorted[i]), dateOf(sorted[j])
		switch {
		case a.IsZero() && b.IsZero():
			return false
		case a.IsZero():
			return false // dateless sorts last
		case b.IsZero():
			return true
		default:
			return a.Before(b)
		}
	})

	groups := make([]Group[T], 0)
	for _, item := range sorted {
		date := dateOf(item)
		if date.IsZero() {
			continue
		}

		key := formatter(date)
		if len(groups) == 0 || groups[len(groups)-1].Date != key {
			groups = append(groups, Group[T]{Date: key})
		}
		groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, item)
	}

	return groups
}

// Pager reveals a list in increments of perPage elements ("load more").
type Pager[T any] struct {
	items   []T
	perPage int
	page    int
}

// NewPager creates a pager over items, revealing perPage elements per page.
// A non-positive perPage defaults to 10.
func NewPager[T any](items []T, perPage int) *Pager[T] {
	if perPage <= 0 {
		perPage = 10
	}
	return &Pager[T]{items: items, perPage: perPage, page: 1}
}

// Visible returns the currently revealed prefix.
func (p *Pager[T]) Visible() []T {
	end := p.page * p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[:end]
}

// HasMore reports whether more elements remain hidden.
func (p *Pager[T]) HasMore() bool {
	return p.page*p.perPage < len(p.items)
}

// Remaining returns the number of still-hidden elements.
func (p *Pager[T]) Remaining() int {
	hidden := len(p.items) - p.page*p.perPage
	if hidden < 0 {
		return 0
	}
	return hidden
}

// LoadMore reveals the next page.
func (p *Pager[T]) LoadMore() {
	p.page++
}

// Reset collapses back to the first page.
func (p *Pager[T]) Reset() {
	p.page = 1
}
