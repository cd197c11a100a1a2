package entity

import "time"

type Location struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Address     string     `gorm:"not null" json:"address"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Hours       string     `json:"hours"`
	Description string     `json:"description"`
	Features    StringList `gorm:"type:text" json:"features"`

	CoordinatesLat *float64 `json:"coordinates_lat"`
	CoordinatesLng *float64 `json:"coordinates_lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []LocationImage `gorm:"foreignKey:LocationID" json:"images"`
}
