package repository

import (
	"savoria/entity"

	"gorm.io/gorm"
)

type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

func preloadLocation(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("is_primary DESC, created_at DESC")
	})
}

func (r *LocationRepository) List() ([]entity.Location, error) {
	var locations []entity.Location
	err := preloadLocation(r.DB).Order("created_at DESC").Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) FindByID(id uint) (*entity.Location, error) {
	var location entity.Location
	if err := preloadLocation(r.DB).First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) Create(location *entity.Location) error {
	return r.DB.Create(location).Error
}

func (r *LocationRepository) Update(location *entity.Location) error {
	res := r.DB.Model(&entity.Location{}).
		Where("id = ?", location.ID).
		Updates(map[string]interface{}{
			"name":            location.Name,
			"address":         location.Address,
			"phone":           location.Phone,
			"email":           location.Email,
			"hours":           location.Hours,
			"description":     location.Description,
			"features":        location.Features,
			"coordinates_lat": location.CoordinatesLat,
			"coordinates_lng": location.CoordinatesLng,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LocationRepository) AddImage(image *entity.LocationImage) error {
	return r.DB.Create(image).Error
}

// DeleteImageByFilename removes the metadata row for one of the location's
// images. Reports whether a row was actually removed.
func (r *LocationRepository) DeleteImageByFilename(locationID uint, filename string) (bool, error) {
	res := r.DB.Where("location_id = ? AND filename = ?", locationID, filename).
		Delete(&entity.LocationImage{})
	return res.RowsAffected > 0, res.Error
}

// DeleteCascade removes the location with its image rows in one transaction
// and returns the filenames so the caller can clean up the files.
func (r *LocationRepository) DeleteCascade(id uint) ([]string, error) {
	var filenames []string
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var location entity.Location
		if err := tx.First(&location, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.LocationImage{}).
			Where("location_id = ?", id).
			Pluck("filename", &filenames).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&entity.LocationImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Location{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return filenames, nil
}
