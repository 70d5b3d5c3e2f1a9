// FILE: internal/controller/dashboard_controller.go
// Controller for dashboard statistics and the live case feed
package controller

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/serverutils"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/service"
	internalWS "github.com/D3M0MK1GN/Demonbot-Telegram/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type DashboardController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type dashboardController struct {
	caseService service.ICaseService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewDashboardController(caseService service.ICaseService, hub *internalWS.Hub, log logger.ILogger) DashboardController {
	return &dashboardController{
		caseService: caseService,
		hub:         hub,
		logger:      log,
	}
}

func (c *dashboardController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	stats := api.Group("/stats", jwtMiddleware)
	stats.Get("/dashboard", c.GetStats)
	stats.Get("/by-type", c.GetStatsByType)
	stats.Get("/history", c.GetStatsHistory)

	api.Get("/users/active", jwtMiddleware, c.GetActiveUsers)
	api.Get("/numbers/top", jwtMiddleware, c.GetTopNumbers)

	// WebSocket feed for the live case list
	api.Get("/ws", c.ServeWs)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.caseService.GetDashboardStats(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", stats))
}

func (c *dashboardController) GetStatsByType(ctx *fiber.Ctx) error {
	stats, err := c.caseService.GetStatsByType(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cases by type", stats))
}

func (c *dashboardController) GetStatsHistory(ctx *fiber.Ctx) error {
	history, err := c.caseService.GetStatsHistory(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Case history", history))
}

func (c *dashboardController) GetActiveUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 5)
	users, err := c.caseService.GetActiveUsers(ctx.UserContext(), limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Active users", users))
}

func (c *dashboardController) GetTopNumbers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)
	numbers, err := c.caseService.GetTopReportedNumbers(ctx.UserContext(), limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Top reported numbers", numbers))
}

// ServeWs upgrades the connection and attaches it to the broadcast hub.
func (c *dashboardController) ServeWs(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("DashboardController", "Starting WebSocket session", nil)
		internalWS.ServeWs(c.hub, conn)
		c.logger.Info("DashboardController", "WebSocket session ended", nil)
	})(ctx)
}
