package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/matter-service/internal/domain"
)

func TestTicketResponseUsesSuppliedReferenceTime(t *testing.T) {
	// Wednesday, January 17 2024; week runs Sunday 14th through Saturday 20th.
	wednesday := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 19, 10, 0, 0, 0, time.UTC)
	ticket := domain.Ticket{
		ID:        "t1",
		Title:     "Fix login bug",
		Status:    domain.TicketStatusOpen,
		Priority:  domain.TicketPriorityHigh,
		DueDate:   &due,
		CreatedAt: wednesday.AddDate(0, 0, -5),
	}

	// Against the week containing the due date the ticket is current.
	resp := ticketResponse(ticket, wednesday)
	assert.True(t, resp.DueThisWeek)
	assert.False(t, resp.Overdue)

	// Against a later reference time the same ticket is overdue, not due
	// this week. The flags must come from the caller's clock, never the
	// wall clock.
	later := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	resp = ticketResponse(ticket, later)
	assert.False(t, resp.DueThisWeek)
	assert.True(t, resp.Overdue)
}

func TestTicketResponsesShareReferenceTime(t *testing.T) {
	wednesday := time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		{ID: "a", DueDate: &due, CreatedAt: wednesday},
		{ID: "b", CreatedAt: wednesday},
	}

	items := ticketResponses(tickets, wednesday)
	assert.Len(t, items, 2)
	assert.True(t, items[0].DueThisWeek)
	assert.False(t, items[1].DueThisWeek)
}
