package repository

import (
	"errors"

	"savoria/entity"

	"gorm.io/gorm"
)

// ErrCategoryInUse is returned when a delete is refused because menu items
// still reference the category.
var ErrCategoryInUse = errors.New("category has existing menu items")

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	res := r.DB.Model(&entity.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{"name": category.Name, "icon": category.Icon})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the category only when no menu item references it.
func (r *CategoryRepository) Delete(id uint) error {
	var refs int64
	if err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrCategoryInUse
	}
	res := r.DB.Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
