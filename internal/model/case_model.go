package model

import "time"

type Case struct {
	Id          uint      `gorm:"primaryKey"`
	UserId      uint      `gorm:"not null;index"`
	CaseNumber  string    `gorm:"type:text;uniqueIndex;not null"`
	Type        string    `gorm:"type:text;not null;default:'otro'"`
	Status      string    `gorm:"type:varchar(50);not null;default:'nuevo'"`
	Description string    `gorm:"type:text"`
	Location    *string   `gorm:"type:text"`
	AmountLost  float64   `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Case) TableName() string {
	return "cases"
}

type Evidence struct {
	Id        uint      `gorm:"primaryKey"`
	CaseId    uint      `gorm:"not null;index"`
	FilePath  string    `gorm:"type:text;not null"`
	FileType  string    `gorm:"type:varchar(50);not null;default:'telegram'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Evidence) TableName() string {
	return "evidences"
}
