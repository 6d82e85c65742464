package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/matter-service/internal/domain"
	"github.com/spec-kit/matter-service/internal/events"
	"github.com/spec-kit/matter-service/internal/query"
	"github.com/spec-kit/matter-service/internal/repository"
	apperrors "github.com/spec-kit/matter-service/pkg/util"
)

// Clock supplies the current time; injected so query windows and timestamps
// are deterministic in tests.
type Clock func() time.Time

// TicketService coordinates ticket queries and mutations.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	clock      Clock
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Clock      Clock
}

// TicketCreateInput describes the ticket creation payload. Status and
// Priority default to open/medium when empty.
type TicketCreateInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
	AssigneeID  *string
	DueDate     *time.Time
}

// TicketUpdateInput is a patch: nil fields are left unchanged. An explicit
// empty AssigneeID clears the assignee.
type TicketUpdateInput struct {
	Title       *string
	Description *string
	Status      *domain.TicketStatus
	Priority    *domain.TicketPriority
	AssigneeID  *string
	DueDate     *time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		clock:      clock,
	}
}

// Now reports the service clock. Transport code uses it so derived flags in
// responses agree with the reference time the query pipeline filtered on.
func (s *TicketService) Now() time.Time {
	return s.clock()
}

// Query returns the filtered, sorted ticket collection.
func (s *TicketService) Query(ctx context.Context, filter query.Filter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Run(tickets, filter, s.clock()), nil
}

// Get fetches one ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}
	return ticket, nil
}

// Create validates and stores a new ticket reported by reporterID.
func (s *TicketService) Create(ctx context.Context, reporterID string, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}

	status := input.Status
	if status == "" {
		status = domain.TicketStatusOpen
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": input.Status})
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}

	ticket := &domain.Ticket{
		ID:          generateTicketID(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Priority:    priority,
		ReporterID:  reporterID,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
		CreatedAt:   s.clock(),
	}

	if err := s.tickets.Insert(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  reporterID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Status:   ticket.Status,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// Update merges the provided fields into the ticket and stamps UpdatedAt.
// Fields absent from the patch are left untouched; a patch with no fields at
// all leaves the ticket as is and publishes nothing.
func (s *TicketService) Update(ctx context.Context, actorID, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}

	var changed []string
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title is required", nil)
		}
		ticket.Title = title
		changed = append(changed, "title")
	}
	if input.Description != nil {
		ticket.Description = strings.TrimSpace(*input.Description)
		changed = append(changed, "description")
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
		}
		ticket.Status = *input.Status
		changed = append(changed, "status")
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": *input.Priority})
		}
		ticket.Priority = *input.Priority
		changed = append(changed, "priority")
	}
	if input.AssigneeID != nil {
		if *input.AssigneeID == "" {
			ticket.AssigneeID = nil
		} else {
			assignee := *input.AssigneeID
			ticket.AssigneeID = &assignee
		}
		changed = append(changed, "assigneeId")
	}
	if input.DueDate != nil {
		due := *input.DueDate
		ticket.DueDate = &due
		changed = append(changed, "dueDate")
	}

	// An empty patch changes nothing: no timestamp, no write, no event.
	if len(changed) == 0 {
		return ticket, nil
	}

	now := s.clock()
	ticket.UpdatedAt = &now

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, s.mapStoreError(err, id)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketUpdatedPayload{ChangedFields: changed},
	})
	return ticket, nil
}

// Delete removes the ticket from the collection.
func (s *TicketService) Delete(ctx context.Context, actorID, id string) error {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return s.mapStoreError(err, id)
	}
	if err := s.tickets.Remove(ctx, id); err != nil {
		return s.mapStoreError(err, id)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: id,
		ActorID:  actorID,
		Payload:  events.TicketDeletedPayload{Title: ticket.Title},
	})
	return nil
}

// Statistics computes dashboard counters over the whole collection.
func (s *TicketService) Statistics(ctx context.Context) (query.TicketStats, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return query.TicketStats{}, err
	}
	return query.Stats(tickets), nil
}

// MyTickets partitions the collection into tickets assigned to and reported
// by the given user.
func (s *TicketService) MyTickets(ctx context.Context, userID string) (query.UserTickets, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return query.UserTickets{}, err
	}
	return query.Partition(tickets, userID), nil
}

func (s *TicketService) mapStoreError(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return err
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func generateTicketID() string {
	return "ticket-" + strings.ToLower(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
