package repository

import (
	"strings"

	"savoria/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func preloadMenuItem(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Tags").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

// List returns menu items newest first, optionally filtered by category
// name and/or the popular flag. Associations are preloaded in grouped IN
// queries rather than per-row lookups.
func (r *MenuItemRepository) List(categoryName string, popularOnly bool) ([]entity.MenuItem, error) {
	q := preloadMenuItem(r.DB)
	if categoryName != "" {
		q = q.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.name = ?", categoryName)
	}
	if popularOnly {
		q = q.Where("menu_items.popular = ?", true)
	}

	var items []entity.MenuItem
	err := q.Order("menu_items.created_at DESC").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := preloadMenuItem(r.DB).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"category_id": item.CategoryID,
			"popular":     item.Popular,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LinkTags upserts each tag by name and links it to the item. Linking is
// insert-or-ignore, so duplicate names in one submission are harmless.
func (r *MenuItemRepository) LinkTags(db *gorm.DB, itemID uint, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag entity.Tag
		if err := db.Where("name = ?", name).FirstOrCreate(&tag, entity.Tag{Name: name}).Error; err != nil {
			return err
		}
		link := map[string]interface{}{"menu_item_id": itemID, "tag_id": tag.ID}
		if err := db.Table("menu_item_tags").
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplaceTags swaps the item's tag-set for the submitted list. Existing
// links are dropped and re-inserted; link rows carry no state worth diffing.
func (r *MenuItemRepository) ReplaceTags(itemID uint, names []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM menu_item_tags WHERE menu_item_id = ?", itemID).Error; err != nil {
			return err
		}
		return r.LinkTags(tx, itemID, names)
	})
}

// DeleteCascade removes the item with its tag links and image rows in one
// transaction and returns the filenames of the removed images so the caller
// can clean up the files after commit.
func (r *MenuItemRepository) DeleteCascade(id uint) ([]string, error) {
	var filenames []string
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var item entity.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.MenuItemImage{}).
			Where("menu_item_id = ?", id).
			Pluck("filename", &filenames).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM menu_item_tags WHERE menu_item_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&entity.MenuItemImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return filenames, nil
}
