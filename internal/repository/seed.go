package repository

import (
	"context"
	"time"

	"github.com/spec-kit/matter-service/internal/domain"
)

// SeedDemoUsers loads the four demo users. Every demo user shares
// passwordHash; the identity layer is a mock.
func SeedDemoUsers(ctx context.Context, users UserRepository, passwordHash string, now time.Time) error {
	demoUsers := []domain.User{
		{ID: "user-1", FirstName: "Avery", LastName: "Stone", Email: "avery.stone@example.com"},
		{ID: "user-2", FirstName: "Max", LastName: "Nash", Email: "max.nash@example.com"},
		{ID: "user-3", FirstName: "Priya", LastName: "Raman", Email: "priya.raman@example.com"},
		{ID: "user-4", FirstName: "Jonas", LastName: "Weber", Email: "jonas.weber@example.com"},
	}
	for i := range demoUsers {
		demoUsers[i].PasswordHash = passwordHash
		demoUsers[i].CreatedAt = now
		if err := users.Insert(ctx, &demoUsers[i]); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoData loads the demo users and tickets the UI expects on a fresh
// environment. Due dates are laid out relative to now so that two tickets
// always land inside the next seven days.
func SeedDemoData(ctx context.Context, tickets TicketRepository, users UserRepository, passwordHash string, now time.Time) error {
	if err := SeedDemoUsers(ctx, users, passwordHash, now); err != nil {
		return err
	}

	demoTickets := []domain.Ticket{
		{
			ID:          "ticket-1",
			Title:       "Fix login bug",
			Description: "Users cannot log in with their credentials. This is a critical issue affecting multiple users.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityHigh,
			ReporterID:  "user-1",
			AssigneeID:  ptr("user-2"),
			DueDate:     ptrTime(now.AddDate(0, 0, 2)),
			CreatedAt:   now.AddDate(0, 0, -5),
		},
		{
			ID:          "ticket-2",
			Title:       "Update dashboard UI",
			Description: "Redesign the dashboard to match new brand guidelines. Include new color scheme and typography.",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityMedium,
			ReporterID:  "user-2",
			AssigneeID:  ptr("user-1"),
			DueDate:     ptrTime(now.AddDate(0, 0, 7)),
			CreatedAt:   now.AddDate(0, 0, -6),
		},
		{
			ID:          "ticket-3",
			Title:       "Add dark mode",
			Description: "Implement dark mode theme across the application. Ensure all components support both themes.",
			Status:      domain.TicketStatusClosed,
			Priority:    domain.TicketPriorityLow,
			ReporterID:  "user-1",
			AssigneeID:  ptr("user-3"),
			DueDate:     ptrTime(now.AddDate(0, 0, 15)),
			CreatedAt:   now.AddDate(0, 0, -10),
		},
		{
			ID:          "ticket-4",
			Title:       "Optimize database queries",
			Description: "Improve performance of slow database queries. Add proper indexing and optimize joins.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityCritical,
			ReporterID:  "user-3",
			AssigneeID:  ptr("user-1"),
			DueDate:     ptrTime(now.AddDate(0, 0, 1)),
			CreatedAt:   now.AddDate(0, 0, -8),
		},
		{
			ID:          "ticket-5",
			Title:       "Implement user settings page",
			Description: "Create a user settings page for profile management and preferences.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityMedium,
			ReporterID:  "user-2",
			AssigneeID:  ptr("user-4"),
			DueDate:     ptrTime(now.AddDate(0, 0, 14)),
			CreatedAt:   now.AddDate(0, 0, -4),
		},
	}
	for i := range demoTickets {
		if err := tickets.Insert(ctx, &demoTickets[i]); err != nil {
			return err
		}
	}
	return nil
}

func ptr(s string) *string {
	return &s
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
