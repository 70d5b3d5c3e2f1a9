package model

import "time"

type ReportedNumber struct {
	Id             uint      `gorm:"primaryKey"`
	Number         string    `gorm:"type:text;uniqueIndex;not null"`
	ReportCount    int       `gorm:"not null;default:1"`
	FraudType      string    `gorm:"type:text"`
	OriginCountry  string    `gorm:"type:text"`
	LastReportedAt time.Time `gorm:"autoCreateTime"`
}

func (ReportedNumber) TableName() string {
	return "reported_numbers"
}
