package entity

import "time"

type LocationImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LocationID   uint      `gorm:"not null;index" json:"location_id"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"original_name"`
	FileSize     int64     `gorm:"not null" json:"file_size"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
}
