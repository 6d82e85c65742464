// Package dto defines the wire payloads. Field names follow the camelCase
// convention of the web client this API fronts.
package dto

import (
	"time"

	"github.com/spec-kit/matter-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status,omitempty"`
	Priority    domain.TicketPriority `json:"priority,omitempty"`
	AssigneeID  *string               `json:"assigneeId,omitempty"`
	DueDate     *time.Time            `json:"dueDate,omitempty"`
}

// UpdateTicketRequest is a patch; absent fields leave the ticket unchanged.
type UpdateTicketRequest struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	Status      *domain.TicketStatus   `json:"status,omitempty"`
	Priority    *domain.TicketPriority `json:"priority,omitempty"`
	AssigneeID  *string                `json:"assigneeId,omitempty"`
	DueDate     *time.Time             `json:"dueDate,omitempty"`
}

// TicketResponse mirrors the domain ticket on the wire.
type TicketResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	ReporterID  string                `json:"reporterId"`
	AssigneeID  *string               `json:"assigneeId,omitempty"`
	DueDate     *time.Time            `json:"dueDate,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   *time.Time            `json:"updatedAt,omitempty"`
	DueThisWeek bool                  `json:"dueThisWeek"`
	Overdue     bool                  `json:"overdue"`
}

// TicketStatsResponse carries dashboard counters.
type TicketStatsResponse struct {
	Total      int                           `json:"total"`
	ByStatus   map[domain.TicketStatus]int   `json:"byStatus"`
	ByPriority map[domain.TicketPriority]int `json:"byPriority"`
}

// MyTicketsResponse partitions tickets for the my-tickets page.
type MyTicketsResponse struct {
	Assigned []TicketResponse `json:"assigned"`
	Reported []TicketResponse `json:"reported"`
}
