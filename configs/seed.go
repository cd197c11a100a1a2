package configs

import (
	"log"

	"savoria/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the default catalog and the bootstrap admin. Both steps are
// count-gated, so a populated database is never re-seeded.
func Seed(db *gorm.DB, cfg *Config) error {
	if err := seedCatalog(db); err != nil {
		return err
	}
	return seedAdmin(db, cfg)
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		log.Println("database already contains data, skipping catalog seed")
		return nil
	}

	categories := []entity.Category{
		{Name: "Appetizers", Icon: "🥗"},
		{Name: "Main Courses", Icon: "🍽️"},
		{Name: "Desserts", Icon: "🍰"},
		{Name: "Beverages", Icon: "🍷"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	tagNames := []string{
		"Vegetarian", "Gluten-Free", "Seafood", "Healthy", "Beef", "Classic",
		"Poultry", "Coffee", "Wine", "Cocktails", "Dairy-Free",
	}
	for _, name := range tagNames {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entity.Tag{Name: name}).Error; err != nil {
			return err
		}
	}

	samples := []struct {
		item     entity.MenuItem
		category string
		tags     []string
	}{
		{
			item: entity.MenuItem{
				Name:        "Truffle Bruschetta",
				Description: "Toasted artisan bread with truffle spread, cherry tomatoes, and fresh basil",
				Price:       "SAR 14",
				Popular:     true,
			},
			category: "Appetizers",
			tags:     []string{"Vegetarian", "Gluten-Free"},
		},
		{
			item: entity.MenuItem{
				Name:        "Grilled Salmon",
				Description: "Atlantic salmon with lemon butter sauce, asparagus, and wild rice",
				Price:       "SAR 32",
				Popular:     true,
			},
			category: "Main Courses",
			tags:     []string{"Seafood", "Gluten-Free", "Healthy"},
		},
		{
			item: entity.MenuItem{
				Name:        "Tiramisu",
				Description: "Classic Italian dessert with espresso-soaked ladyfingers and mascarpone",
				Price:       "SAR 12",
				Popular:     true,
			},
			category: "Desserts",
			tags:     []string{"Vegetarian", "Classic"},
		},
	}
	for _, s := range samples {
		var category entity.Category
		if err := db.Where("name = ?", s.category).First(&category).Error; err != nil {
			continue
		}
		s.item.CategoryID = category.ID
		if err := db.Create(&s.item).Error; err != nil {
			return err
		}
		for _, tagName := range s.tags {
			var tag entity.Tag
			if err := db.Where("name = ?", tagName).First(&tag).Error; err != nil {
				continue
			}
			if err := db.Model(&s.item).Association("Tags").Append(&tag); err != nil {
				return err
			}
		}
	}

	log.Println("default catalog seeded")
	return nil
}

func seedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	db.Model(&entity.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{Username: cfg.AdminUsername, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("bootstrap admin created:", cfg.AdminUsername)
	return nil
}
