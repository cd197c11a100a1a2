package repository

import (
	"savoria/entity"

	"gorm.io/gorm"
)

type ImageRepository struct {
	DB *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

func (r *ImageRepository) Add(image *entity.MenuItemImage) error {
	return r.DB.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint) (*entity.MenuItemImage, error) {
	var image entity.MenuItemImage
	if err := r.DB.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ListByMenuItem(menuItemID uint) ([]entity.MenuItemImage, error) {
	var images []entity.MenuItemImage
	err := r.DB.Where("menu_item_id = ?", menuItemID).
		Order("created_at DESC").
		Find(&images).Error
	return images, err
}

// AllImageRow is a menu item image joined with its owner's name, for the
// back-office gallery listing.
type AllImageRow struct {
	entity.MenuItemImage
	MenuItemName string `json:"menu_item_name"`
}

func (r *ImageRepository) ListAll() ([]AllImageRow, error) {
	var rows []AllImageRow
	err := r.DB.Table("menu_item_images").
		Select("menu_item_images.*, menu_items.name AS menu_item_name").
		Joins("LEFT JOIN menu_items ON menu_items.id = menu_item_images.menu_item_id").
		Order("menu_item_images.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ImageRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItemImage{}, id).Error
}

// FindOwned returns the image only when it belongs to the given menu item.
func (r *ImageRepository) FindOwned(id, menuItemID uint) (*entity.MenuItemImage, error) {
	var image entity.MenuItemImage
	if err := r.DB.Where("id = ? AND menu_item_id = ?", id, menuItemID).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
