package services

import (
	"log"

	"savoria/entity"
	"savoria/pkg/upload"
	"savoria/repository"
)

type MenuItemService struct {
	Repo   *repository.MenuItemRepository
	Images *repository.ImageRepository
	Store  *upload.Store
}

func NewMenuItemService(repo *repository.MenuItemRepository, images *repository.ImageRepository, store *upload.Store) *MenuItemService {
	return &MenuItemService{Repo: repo, Images: images, Store: store}
}

func (s *MenuItemService) List(categoryName string, popularOnly bool) ([]entity.MenuItem, error) {
	return s.Repo.List(categoryName, popularOnly)
}

func (s *MenuItemService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

// Create inserts the item, then ingests the attached images and links the
// submitted tags. Zero-byte and invalid files are skipped, not fatal.
func (s *MenuItemService) Create(item *entity.MenuItem, tags []string, files []UploadedFile) (int, error) {
	if err := s.Repo.Create(item); err != nil {
		return 0, err
	}
	rows, err := s.attachImages(item.ID, files)
	if err != nil {
		return len(rows), err
	}
	if err := s.Repo.LinkTags(s.Repo.DB, item.ID, tags); err != nil {
		return len(rows), err
	}
	return len(rows), nil
}

// Update rewrites the item fields, removes the images marked for deletion
// (file and row) before ingesting new ones, and replaces the tag-set.
func (s *MenuItemService) Update(item *entity.MenuItem, tags []string, files []UploadedFile, deleteImageIDs []uint) (uploaded, deleted int, err error) {
	if err := s.Repo.Update(item); err != nil {
		return 0, 0, err
	}

	for _, imageID := range deleteImageIDs {
		image, err := s.Images.FindOwned(imageID, item.ID)
		if err != nil {
			continue
		}
		s.Store.Remove(image.Filename)
		if err := s.Images.Delete(image.ID); err != nil {
			return uploaded, deleted, err
		}
		deleted++
	}

	rows, err := s.attachImages(item.ID, files)
	uploaded = len(rows)
	if err != nil {
		return uploaded, deleted, err
	}

	if err := s.Repo.ReplaceTags(item.ID, tags); err != nil {
		return uploaded, deleted, err
	}
	return uploaded, deleted, nil
}

// Delete cascades: tag links and image rows go with the item inside one
// transaction, then the files are removed best-effort after commit.
func (s *MenuItemService) Delete(id uint) (int, error) {
	filenames, err := s.Repo.DeleteCascade(id)
	if err != nil {
		return 0, err
	}
	for _, filename := range filenames {
		s.Store.Remove(filename)
	}
	return len(filenames), nil
}

// AddImages ingests a batch for an existing item and returns the new rows.
func (s *MenuItemService) AddImages(itemID uint, files []UploadedFile) ([]entity.MenuItemImage, error) {
	if _, err := s.Repo.FindByID(itemID); err != nil {
		return nil, err
	}
	return s.attachImages(itemID, files)
}

func (s *MenuItemService) attachImages(itemID uint, files []UploadedFile) ([]entity.MenuItemImage, error) {
	var rows []entity.MenuItemImage
	for _, f := range files {
		if len(f.Data) == 0 {
			continue
		}
		stored, err := ingestImage(s.Store, f)
		if err != nil {
			log.Printf("skipping upload %s: %v", f.Name, err)
			continue
		}
		row := entity.MenuItemImage{
			MenuItemID:   itemID,
			Filename:     stored.Filename,
			OriginalName: f.Name,
			FileSize:     stored.Size,
		}
		if err := s.Images.Add(&row); err != nil {
			// keep row/file pairing: a failed insert means the file goes too
			s.Store.Remove(stored.Filename)
			return rows, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
