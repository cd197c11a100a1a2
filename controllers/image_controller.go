package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"savoria/pkg/resp"
	"savoria/pkg/upload"
	"savoria/repository"
	"savoria/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImageController struct {
	Repo      *repository.ImageRepository
	MenuItems *services.MenuItemService
	Store     *upload.Store
}

func NewImageController(repo *repository.ImageRepository, menuItems *services.MenuItemService, store *upload.Store) *ImageController {
	return &ImageController{Repo: repo, MenuItems: menuItems, Store: store}
}

// GET /images
func (ctl *ImageController) ListAll(c *gin.Context) {
	rows, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /menu-items/:id/images
func (ctl *ImageController) ListByMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	images, err := ctl.Repo.ListByMenuItem(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, images)
}

// POST /menu-items/:id/images (multipart)
func (ctl *ImageController) UploadForMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	files, err := readUploadedFiles(c, "images")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(files) == 0 {
		resp.BadRequest(c, "No images provided")
		return
	}

	rows, err := ctl.MenuItems.AddImages(uint(id), files)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": fmt.Sprintf("%d images uploaded successfully", len(rows)),
		"images":  rows,
	})
}

// DELETE /images/:id removes the file first, then the metadata row.
func (ctl *ImageController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	image, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Image not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	ctl.Store.Remove(image.Filename)
	if err := ctl.Repo.Delete(image.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Image deleted successfully"})
}
