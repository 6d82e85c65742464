// Package query implements the ticket query pipeline: predicate filtering,
// stable sorting and the derived dashboard views. Everything here is pure;
// the current time is always passed in by the caller.
package query

import (
	"strings"
	"time"

	"github.com/spec-kit/matter-service/internal/dates"
	"github.com/spec-kit/matter-service/internal/domain"
)

// FilterAll is the sentinel accepted on enum dimensions meaning "no constraint".
const FilterAll = "all"

// Filter describes one ticket query. Every dimension is optional; the zero
// value matches every ticket. Status, Priority and AssigneeID treat "" and
// "all" as unspecified.
type Filter struct {
	Search      string
	Status      string
	Priority    string
	AssigneeID  string
	DueThisWeek bool
	SortBy      SortKey
}

// Matches reports whether the ticket passes every specified dimension.
func (f Filter) Matches(t domain.Ticket, now time.Time) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		needle := strings.ToLower(search)
		title := strings.ToLower(t.Title)
		description := strings.ToLower(t.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}
	if constrained(f.Status) && t.Status != domain.TicketStatus(f.Status) {
		return false
	}
	if constrained(f.Priority) && t.Priority != domain.TicketPriority(f.Priority) {
		return false
	}
	if constrained(f.AssigneeID) {
		if t.AssigneeID == nil || *t.AssigneeID != f.AssigneeID {
			return false
		}
	}
	if f.DueThisWeek && !dates.DueThisWeek(t.DueDate, now) {
		return false
	}
	return true
}

func constrained(val string) bool {
	return val != "" && val != FilterAll
}
