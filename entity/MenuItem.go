package entity

import "time"

type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Price is a free-text currency string, e.g. "SAR 14".
	Price      string `gorm:"not null" json:"price"`
	CategoryID uint   `json:"category_id"`
	Popular    bool   `json:"popular"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category Category        `json:"-"`
	Tags     []Tag           `gorm:"many2many:menu_item_tags;" json:"-"`
	Images   []MenuItemImage `gorm:"foreignKey:MenuItemID" json:"-"`
}
