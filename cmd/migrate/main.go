package main

import (
	"log"
	"os"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("Error: DATABASE_URL is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.User{},
		&model.Case{},
		&model.Evidence{},
		&model.ReportedNumber{},
		&model.BotInteraction{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: indexes AutoMigrate doesn't cover
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_cases_status ON cases (status);`,
		`CREATE INDEX IF NOT EXISTS idx_cases_created_at ON cases (created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_users_last_active ON users (last_active);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
