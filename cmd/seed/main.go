package main

import (
	"log"
	"os"
	"time"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the community fraud database with a starter set of reported
// numbers so lookups return something useful on a fresh install.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("Error: DATABASE_URL is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	numbers := []model.ReportedNumber{
		{Number: "+525512345678", ReportCount: 14, FraudType: "extorsion", OriginCountry: "MX", LastReportedAt: time.Now()},
		{Number: "+525598765432", ReportCount: 9, FraudType: "phishing", OriginCountry: "MX", LastReportedAt: time.Now()},
		{Number: "+14155550123", ReportCount: 5, FraudType: "phishing", OriginCountry: "US", LastReportedAt: time.Now()},
		{Number: "+573001112233", ReportCount: 3, FraudType: "otro", OriginCountry: "CO", LastReportedAt: time.Now()},
	}

	seeded := 0
	for _, n := range numbers {
		res := db.Exec(`
			INSERT INTO reported_numbers (number, report_count, fraud_type, origin_country, last_reported_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (number) DO NOTHING
		`, n.Number, n.ReportCount, n.FraudType, n.OriginCountry, n.LastReportedAt)
		if res.Error != nil {
			log.Printf("Warn: Failed to seed %s: %v", n.Number, res.Error)
			continue
		}
		seeded += int(res.RowsAffected)
	}

	log.Printf("✅ Seeded %d reported numbers.", seeded)
}
