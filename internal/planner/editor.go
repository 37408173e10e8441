package planner

import (
	"context"
	"sort"
)

// Editor applies add/remove/reorder/clear operations to a Store.
type Editor struct {
	store *Store
}

func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

func (e *Editor) Store() *Store { return e.store }

// Add appends item to the date's list and returns it with its assigned id.
// An empty time becomes AnyTime and an unset time of day is derived from the time.
func (e *Editor) Add(ctx context.Context, date string, item PlanItem) PlanItem {
	item = normalizeItem(date, cloneItem(item))
	e.store.mutate(ctx, date, func(items []PlanItem) ([]PlanItem, bool) {
		item.ID = e.store.assignID()
		return append(items, item), true
	})
	return cloneItem(item)
}

// Remove deletes the item with the given id. It reports whether an item was removed.
func (e *Editor) Remove(ctx context.Context, date string, id int64) bool {
	return e.store.mutate(ctx, date, func(items []PlanItem) ([]PlanItem, bool) {
		for i, it := range items {
			if it.ID == id {
				return append(items[:i:i], items[i+1:]...), true
			}
		}
		return items, false
	})
}

// Reorder moves the item at from to index to, keeping every other item in order.
// Out-of-range indices leave the list untouched.
func (e *Editor) Reorder(ctx context.Context, date string, from, to int) bool {
	return e.store.mutate(ctx, date, func(items []PlanItem) ([]PlanItem, bool) {
		return move(items, from, to)
	})
}

// Clear drops every item planned for date.
func (e *Editor) Clear(ctx context.Context, date string) bool {
	return e.store.mutate(ctx, date, func(items []PlanItem) ([]PlanItem, bool) {
		return nil, len(items) > 0
	})
}

// Replace swaps the date's list for items. Items get fresh ids so they cannot
// collide with ids already used elsewhere in the plan.
func (e *Editor) Replace(ctx context.Context, date string, items []PlanItem) []PlanItem {
	var out []PlanItem
	e.store.mutate(ctx, date, func(existing []PlanItem) ([]PlanItem, bool) {
		out = make([]PlanItem, 0, len(items))
		for _, it := range cloneItems(items) {
			it = normalizeItem(date, it)
			it.ID = e.store.assignID()
			out = append(out, it)
		}
		return out, len(existing) > 0 || len(out) > 0
	})
	return cloneItems(out)
}

// ToggleVenue inserts item unless the date already holds an item for the same
// venue, in which case that item is removed instead. Items without a venue are
// matched on activity type and notes. The list is then sorted by time.
// It reports whether the item was added.
func (e *Editor) ToggleVenue(ctx context.Context, date string, item PlanItem) (PlanItem, bool) {
	item = normalizeItem(date, cloneItem(item))
	added := false
	e.store.mutate(ctx, date, func(items []PlanItem) ([]PlanItem, bool) {
		idx := -1
		for i, it := range items {
			if sameToggleKey(it, item) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			item = items[idx]
			items = append(items[:idx:idx], items[idx+1:]...)
		} else {
			item.ID = e.store.assignID()
			items = append(items, item)
			added = true
		}
		sortByTime(items)
		return items, true
	})
	return cloneItem(item), added
}

// SortByTime orders the date's list ascending by time, AnyTime last.
func (e *Editor) SortByTime(ctx context.Context, date string) {
	e.store.mutate(ctx, date, func(items []PlanItem) ([]PlanItem, bool) {
		if len(items) < 2 {
			return items, false
		}
		sortByTime(items)
		return items, true
	})
}

func sameToggleKey(existing, candidate PlanItem) bool {
	if candidate.VenueID != nil {
		return existing.hasVenue(candidate.VenueID)
	}
	return existing.VenueID == nil &&
		existing.ActivityType == candidate.ActivityType &&
		existing.Notes == candidate.Notes
}

func sortByTime(items []PlanItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(items[i].Time) < sortKey(items[j].Time)
	})
}

func move(items []PlanItem, from, to int) ([]PlanItem, bool) {
	n := len(items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return items, false
	}
	out := make([]PlanItem, 0, n)
	moved := items[from]
	for i, it := range items {
		if i != from {
			out = append(out, it)
		}
	}
	out = append(out[:to], append([]PlanItem{moved}, out[to:]...)...)
	return out, true
}

func normalizeItem(date string, item PlanItem) PlanItem {
	item.Date = date
	if item.Time == "" {
		item.Time = AnyTime
	}
	if item.TimeOfDay == TimeOfDayUnset {
		item.TimeOfDay = TimeOfDayFor(item.Time)
	}
	return item
}
