package bootstrap

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/config"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/controller"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/handler"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/memory"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/unitofwork"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/service"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/websocket"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CaseController      controller.CaseController
	DashboardController controller.DashboardController

	// Conversation core (consumed by the Telegram adapter)
	ConversationService service.IConversationService

	// Background workers (exposed for main.go to run)
	CaseEventHandler *handler.CaseEventHandler
	WebSocketHub     *websocket.Hub

	// System logger shared with main
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisher := events.NewPublisher(pubSub)

	// 3. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 4. WebSocket Hub (dashboard live feed)
	wsLogger := logger.NewIsolatedLogger("logs/dashboard-feed.log")
	wsHub := websocket.NewHub(wsLogger)

	// 5. Services
	caseService := service.NewCaseService(uowFactory, sysLogger)
	conversationService := service.NewConversationService(sessionRepo, caseService, publisher, sysLogger)

	// 6. Event Handler (audit trail + feed broadcast)
	caseEventHandler := handler.NewCaseEventHandler(pubSub, uowFactory, wsHub, sysLogger)

	// 7. Controllers
	caseController := controller.NewCaseController(caseService)
	dashboardController := controller.NewDashboardController(caseService, wsHub, sysLogger)

	return &Container{
		CaseController:      caseController,
		DashboardController: dashboardController,
		ConversationService: conversationService,
		CaseEventHandler:    caseEventHandler,
		WebSocketHub:        wsHub,
		Logger:              sysLogger,
	}
}
