package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/matter-service/internal/domain"
)

// SortKey selects the ordering applied to query results.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByTitle    SortKey = "title"
	SortByPriority SortKey = "priority"
	SortByDueDate  SortKey = "dueDate"
)

// normalize maps unknown keys to the default ordering. Display filtering
// degrades rather than erroring on bad input.
func (k SortKey) normalize() SortKey {
	switch k {
	case SortByDate, SortByTitle, SortByPriority, SortByDueDate:
		return k
	}
	return SortByDate
}

// Sort orders tickets in place by the given key. Every ordering is stable:
// tickets comparing equal keep their relative input order.
//
// Title ordering is collation-based (English locale); case differences are
// resolved at the collator's tertiary strength, so "apple" and "Apple" sort
// adjacently rather than by byte value.
func Sort(tickets []domain.Ticket, key SortKey) {
	switch key.normalize() {
	case SortByTitle:
		coll := collate.New(language.English)
		sort.SliceStable(tickets, func(i, j int) bool {
			return coll.CompareString(tickets[i].Title, tickets[j].Title) < 0
		})
	case SortByPriority:
		sort.SliceStable(tickets, func(i, j int) bool {
			return tickets[i].Priority.Rank() < tickets[j].Priority.Rank()
		})
	case SortByDueDate:
		sort.SliceStable(tickets, func(i, j int) bool {
			a, b := tickets[i].DueDate, tickets[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	default:
		sort.SliceStable(tickets, func(i, j int) bool {
			return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
		})
	}
}
