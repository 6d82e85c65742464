package worker

import (
	"context"

	"github.com/spec-kit/matter-service/internal/cache"
	"github.com/spec-kit/matter-service/internal/events"
	"github.com/spec-kit/matter-service/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartCacheInvalidator drops cached dashboard statistics whenever a ticket
// mutation is published.
func StartCacheInvalidator(dispatcher events.Dispatcher, stats *cache.StatsCache) {
	if dispatcher == nil || stats == nil {
		return
	}
	invalidate := func(ctx context.Context, event events.Event) error {
		stats.Invalidate(ctx)
		return nil
	}
	dispatcher.Subscribe(events.EventTicketCreated, invalidate)
	dispatcher.Subscribe(events.EventTicketUpdated, invalidate)
	dispatcher.Subscribe(events.EventTicketDeleted, invalidate)
}
