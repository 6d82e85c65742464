package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matter-service/internal/api/dto"
	"github.com/spec-kit/matter-service/internal/auth"
	"github.com/spec-kit/matter-service/internal/cache"
	"github.com/spec-kit/matter-service/internal/query"
	"github.com/spec-kit/matter-service/internal/service"
	apperrors "github.com/spec-kit/matter-service/pkg/util"
)

// DashboardHandler serves the statistics and my-tickets views.
type DashboardHandler struct {
	service    *service.TicketService
	statsCache *cache.StatsCache
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(ticketService *service.TicketService, statsCache *cache.StatsCache) *DashboardHandler {
	return &DashboardHandler{service: ticketService, statsCache: statsCache}
}

// Stats GET /tickets/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	stats, hit := h.statsCache.Get(ctx)
	if !hit {
		var err error
		stats, err = h.service.Statistics(ctx)
		if err != nil {
			return err
		}
		h.statsCache.Set(ctx, stats)
	}
	return c.JSON(fiber.Map{"data": statsResponse(stats)})
}

// MyTickets GET /my/tickets.
func (h *DashboardHandler) MyTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	parts, err := h.service.MyTickets(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	now := h.service.Now()
	return c.JSON(fiber.Map{"data": dto.MyTicketsResponse{
		Assigned: ticketResponses(parts.Assigned, now),
		Reported: ticketResponses(parts.Reported, now),
	}})
}

func statsResponse(stats query.TicketStats) dto.TicketStatsResponse {
	return dto.TicketStatsResponse{
		Total:      stats.Total,
		ByStatus:   stats.ByStatus,
		ByPriority: stats.ByPriority,
	}
}
