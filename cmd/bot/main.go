package main

import (
	"context"
	"log"
	"strings"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/bootstrap"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/config"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/server"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/telegram"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if missing := cfg.Validate(); len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %s", strings.Join(missing, ", "))
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go container.WebSocketHub.Run()
	go func() {
		log.Println("Background: Starting Case Event Handler...")
		if err := container.CaseEventHandler.Run(context.Background()); err != nil {
			log.Printf("Background Event Handler Error: %v", err)
		}
	}()

	// 5. Dashboard API
	srv := server.New(cfg, container)
	go func() {
		log.Fatal(srv.Run())
	}()

	// 6. Telegram long polling (foreground)
	bot, err := telegram.NewBot(
		cfg.Telegram.Token,
		cfg.Telegram.PollTimeout,
		cfg.Telegram.Debug,
		container.ConversationService,
		container.Logger,
	)
	if err != nil {
		log.Fatalf("Unable to start Telegram bot: %v", err)
	}
	log.Fatal(bot.Run(context.Background()))
}
