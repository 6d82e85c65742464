package query

import (
	"time"

	"github.com/spec-kit/matter-service/internal/domain"
)

// Run filters the collection through the filter's predicate and returns the
// survivors ordered by the filter's sort key. The input slice is not
// modified. An empty collection yields an empty result, never an error.
func Run(tickets []domain.Ticket, filter Filter, now time.Time) []domain.Ticket {
	result := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if filter.Matches(t, now) {
			result = append(result, t)
		}
	}
	Sort(result, filter.SortBy)
	return result
}

// TicketStats aggregates counts over the whole collection for the dashboard.
// Both maps carry every enumerated key, zero-filled.
type TicketStats struct {
	Total      int
	ByStatus   map[domain.TicketStatus]int
	ByPriority map[domain.TicketPriority]int
}

// Stats computes collection-wide counters, independent of any filter.
func Stats(tickets []domain.Ticket) TicketStats {
	stats := TicketStats{
		Total:      len(tickets),
		ByStatus:   make(map[domain.TicketStatus]int, 3),
		ByPriority: make(map[domain.TicketPriority]int, 4),
	}
	for _, s := range domain.Statuses() {
		stats.ByStatus[s] = 0
	}
	for _, p := range domain.Priorities() {
		stats.ByPriority[p] = 0
	}
	for _, t := range tickets {
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
	}
	return stats
}

// UserTickets partitions a collection from one user's point of view. The two
// lists are not mutually exclusive: a ticket reported by and assigned to the
// same user appears in both.
type UserTickets struct {
	Assigned []domain.Ticket
	Reported []domain.Ticket
}

// Partition splits the collection into tickets assigned to and reported by
// the given user, preserving input order.
func Partition(tickets []domain.Ticket, userID string) UserTickets {
	parts := UserTickets{
		Assigned: []domain.Ticket{},
		Reported: []domain.Ticket{},
	}
	for _, t := range tickets {
		if t.AssigneeID != nil && *t.AssigneeID == userID {
			parts.Assigned = append(parts.Assigned, t)
		}
		if t.ReporterID == userID {
			parts.Reported = append(parts.Reported, t)
		}
	}
	return parts
}
