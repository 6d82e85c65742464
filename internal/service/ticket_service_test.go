package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/matter-service/internal/domain"
	"github.com/spec-kit/matter-service/internal/events"
	"github.com/spec-kit/matter-service/internal/query"
	"github.com/spec-kit/matter-service/internal/repository"
	apperrors "github.com/spec-kit/matter-service/pkg/util"
)

// Wednesday, January 17 2024; week runs Sunday 14th through Saturday 20th.
var frozenNow = time.Date(2024, time.January, 17, 12, 0, 0, 0, time.UTC)

func frozenClock() time.Time {
	return frozenNow
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newTestService(t *testing.T) (*TicketService, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	svc := NewTicketService(TicketDependencies{
		TicketRepo: repository.NewMemoryTicketRepository(),
		Dispatcher: dispatcher,
		Clock:      frozenClock,
	})
	return svc, dispatcher
}

func strp(s string) *string {
	return &s
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	ticket, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "  Add dark mode  "})
	require.NoError(t, err)

	assert.Equal(t, "Add dark mode", ticket.Title)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.Equal(t, "user-1", ticket.ReporterID)
	assert.Equal(t, frozenNow, ticket.CreatedAt)
	assert.Nil(t, ticket.UpdatedAt)
	assert.NotEmpty(t, ticket.ID)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventTicketCreated, dispatcher.published[0].Type)
	assert.Equal(t, ticket.ID, dispatcher.published[0].TicketID)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	svc, dispatcher := newTestService(t)

	_, err := svc.Create(context.Background(), "user-1", TicketCreateInput{Title: "   "})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	assert.Empty(t, dispatcher.published)
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "t", Status: "archived"})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = svc.Create(ctx, "user-1", TicketCreateInput{Title: "t", Priority: "urgent"})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestCreatedTicketIsVisibleInQuery(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "Fix login bug"})
	require.NoError(t, err)

	tickets, err := svc.Query(ctx, query.Filter{})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, created.ID, tickets[0].ID)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	due := time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, "user-1", TicketCreateInput{
		Title:       "Fix login bug",
		Description: "Users cannot log in",
		Priority:    domain.TicketPriorityHigh,
		AssigneeID:  strp("user-2"),
		DueDate:     &due,
	})
	require.NoError(t, err)

	status := domain.TicketStatusInProgress
	updated, err := svc.Update(ctx, "user-2", created.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusInProgress, updated.Status)
	assert.Equal(t, "Fix login bug", updated.Title)
	assert.Equal(t, "Users cannot log in", updated.Description)
	assert.Equal(t, domain.TicketPriorityHigh, updated.Priority)
	assert.Equal(t, "user-1", updated.ReporterID)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, "user-2", *updated.AssigneeID)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, frozenNow, *updated.UpdatedAt)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventTicketUpdated, dispatcher.published[1].Type)
	payload, ok := dispatcher.published[1].Payload.(events.TicketUpdatedPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"status"}, payload.ChangedFields)
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "t"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", created.ID, TicketUpdateInput{})
	require.NoError(t, err)
	assert.Nil(t, updated.UpdatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UpdatedAt)

	// Only the create event was published.
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventTicketCreated, dispatcher.published[0].Type)
}

func TestUpdateClearsAssigneeOnEmptyString(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "t", AssigneeID: strp("user-2")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", created.ID, TicketUpdateInput{AssigneeID: strp("")})
	require.NoError(t, err)
	assert.Nil(t, updated.AssigneeID)
}

func TestUpdateRejectsBlankTitleAndBadEnums(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "t"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-1", created.ID, TicketUpdateInput{Title: strp("  ")})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	badStatus := domain.TicketStatus("archived")
	_, err = svc.Update(ctx, "user-1", created.ID, TicketUpdateInput{Status: &badStatus})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	// Failed patches must not have touched the stored ticket.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, domain.TicketStatusOpen, got.Status)
}

func TestUpdateMissingTicket(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), "user-1", "ghost", TicketUpdateInput{Title: strp("x")})
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDelete(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "Fix login bug"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	assert.True(t, apperrors.IsCode(svc.Delete(ctx, "user-1", created.ID), "NOT_FOUND"))

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventTicketDeleted, dispatcher.published[1].Type)
	payload, ok := dispatcher.published[1].Payload.(events.TicketDeletedPayload)
	require.True(t, ok)
	assert.Equal(t, "Fix login bug", payload.Title)
}

func TestNowReportsInjectedClock(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, frozenNow, svc.Now())
}

func TestQueryUsesInjectedClock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Friday of the frozen week.
	due := time.Date(2024, time.January, 19, 10, 0, 0, 0, time.UTC)
	inWeek, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "due soon", DueDate: &due})
	require.NoError(t, err)

	farDue := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, "user-1", TicketCreateInput{Title: "due later", DueDate: &farDue})
	require.NoError(t, err)

	tickets, err := svc.Query(ctx, query.Filter{DueThisWeek: true})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, inWeek.ID, tickets[0].ID)
}

func TestStatistics(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "a", Priority: domain.TicketPriorityHigh})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-1", TicketCreateInput{Title: "b", Status: domain.TicketStatusClosed})
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[domain.TicketStatusOpen])
	assert.Equal(t, 1, stats.ByStatus[domain.TicketStatusClosed])
	assert.Equal(t, 1, stats.ByPriority[domain.TicketPriorityHigh])
	assert.Equal(t, 1, stats.ByPriority[domain.TicketPriorityMedium])
}

func TestMyTickets(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reported, err := svc.Create(ctx, "user-1", TicketCreateInput{Title: "reported"})
	require.NoError(t, err)
	assigned, err := svc.Create(ctx, "user-2", TicketCreateInput{Title: "assigned", AssigneeID: strp("user-1")})
	require.NoError(t, err)

	mine, err := svc.MyTickets(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, mine.Assigned, 1)
	assert.Equal(t, assigned.ID, mine.Assigned[0].ID)
	require.Len(t, mine.Reported, 1)
	assert.Equal(t, reported.ID, mine.Reported[0].ID)
}
