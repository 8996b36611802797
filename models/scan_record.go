package models

import "time"

type ScanRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	Score        float64   `json:"score"`
	Label        string    `gorm:"size:32" json:"label"`
	HarmfulCount int       `json:"harmful_count"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}
