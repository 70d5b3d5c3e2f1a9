package entity

import "time"

// ReportedNumber is the community fraud database. The bot only reads it;
// rows are maintained by the seeding job and external tooling.
type ReportedNumber struct {
	Id             uint
	Number         string
	ReportCount    int
	FraudType      string
	OriginCountry  string
	LastReportedAt time.Time
}
