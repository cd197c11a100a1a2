package entity

import "time"

// MenuItemImage is the metadata row for a file under public/uploads.
// The row and the file must stay paired: the file is written before the
// row is inserted, and deleting the row also deletes the file.
type MenuItemImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MenuItemID   uint      `gorm:"not null;index" json:"menu_item_id"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"original_name"`
	FileSize     int64     `gorm:"not null" json:"file_size"`
	CreatedAt    time.Time `json:"created_at"`
}
