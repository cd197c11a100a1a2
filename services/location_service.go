package services

import (
	"log"

	"savoria/entity"
	"savoria/pkg/upload"
	"savoria/repository"
)

type LocationService struct {
	Repo  *repository.LocationRepository
	Store *upload.Store
}

func NewLocationService(repo *repository.LocationRepository, store *upload.Store) *LocationService {
	return &LocationService{Repo: repo, Store: store}
}

func (s *LocationService) List() ([]entity.Location, error) {
	return s.Repo.List()
}

func (s *LocationService) Get(id uint) (*entity.Location, error) {
	return s.Repo.FindByID(id)
}

// Create inserts the location and ingests its image batch. The first
// submitted file becomes the primary image.
func (s *LocationService) Create(location *entity.Location, files []UploadedFile) ([]entity.LocationImage, error) {
	if err := s.Repo.Create(location); err != nil {
		return nil, err
	}
	return s.attachImages(location.ID, files, true)
}

// Update rewrites the location fields, removes the images named in the
// deletion list (row first, then the file best-effort) and ingests new
// uploads as non-primary.
func (s *LocationService) Update(location *entity.Location, files []UploadedFile, deleteFilenames []string) (uploaded, deleted int, err error) {
	if err := s.Repo.Update(location); err != nil {
		return 0, 0, err
	}

	for _, filename := range deleteFilenames {
		removed, err := s.Repo.DeleteImageByFilename(location.ID, filename)
		if err != nil {
			return uploaded, deleted, err
		}
		if removed {
			s.Store.Remove(filename)
			deleted++
		}
	}

	rows, err := s.attachImages(location.ID, files, false)
	return len(rows), deleted, err
}

// Delete cascades the location and its image rows in one transaction, then
// removes the files best-effort.
func (s *LocationService) Delete(id uint) (int, error) {
	filenames, err := s.Repo.DeleteCascade(id)
	if err != nil {
		return 0, err
	}
	for _, filename := range filenames {
		s.Store.Remove(filename)
	}
	return len(filenames), nil
}

func (s *LocationService) attachImages(locationID uint, files []UploadedFile, firstIsPrimary bool) ([]entity.LocationImage, error) {
	var rows []entity.LocationImage
	for i, f := range files {
		if len(f.Data) == 0 {
			continue
		}
		stored, err := ingestImage(s.Store, f)
		if err != nil {
			log.Printf("skipping upload %s: %v", f.Name, err)
			continue
		}
		row := entity.LocationImage{
			LocationID:   locationID,
			Filename:     stored.Filename,
			OriginalName: f.Name,
			FileSize:     stored.Size,
			IsPrimary:    firstIsPrimary && i == 0,
		}
		if err := s.Repo.AddImage(&row); err != nil {
			s.Store.Remove(stored.Filename)
			return rows, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
