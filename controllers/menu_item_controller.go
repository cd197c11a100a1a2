package controllers

import (
	"errors"
	"strconv"
	"time"

	"savoria/entity"
	"savoria/pkg/resp"
	"savoria/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuItemController struct {
	Service *services.MenuItemService
}

func NewMenuItemController(s *services.MenuItemService) *MenuItemController {
	return &MenuItemController{Service: s}
}

// MenuItemResponse is the denormalized wire shape: category name, tag names
// and image metadata are folded into the row.
type MenuItemResponse struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Price        string                 `json:"price"`
	CategoryID   uint                   `json:"category_id"`
	CategoryName string                 `json:"category_name"`
	Popular      bool                   `json:"popular"`
	Tags         []string               `json:"tags"`
	Images       []entity.MenuItemImage `json:"images"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func mapToMenuItemResponse(item *entity.MenuItem) MenuItemResponse {
	tags := make([]string, 0, len(item.Tags))
	for _, tag := range item.Tags {
		tags = append(tags, tag.Name)
	}
	images := item.Images
	if images == nil {
		images = []entity.MenuItemImage{}
	}
	return MenuItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		CategoryID:   item.CategoryID,
		CategoryName: item.Category.Name,
		Popular:      item.Popular,
		Tags:         tags,
		Images:       images,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// GET /menu-items?category=<name>&popular=true
func (ctl *MenuItemController) List(c *gin.Context) {
	items, err := ctl.Service.List(c.Query("category"), c.Query("popular") == "true")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToMenuItemResponse(&items[i]))
	}
	resp.OK(c, out)
}

// GET /menu-items/:id
func (ctl *MenuItemController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mapToMenuItemResponse(item))
}

func (ctl *MenuItemController) bindItem(c *gin.Context) (*entity.MenuItem, []string, bool) {
	name := c.PostForm("name")
	if name == "" {
		resp.BadRequest(c, "Menu item name is required")
		return nil, nil, false
	}
	categoryID, _ := strconv.Atoi(c.PostForm("categoryId"))
	item := &entity.MenuItem{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		CategoryID:  uint(categoryID),
		Popular:     c.PostForm("popular") == "true",
	}
	tags := parseJSONList(c.PostForm("tags"), "tags")
	return item, tags, true
}

// POST /menu-items (multipart)
func (ctl *MenuItemController) Create(c *gin.Context) {
	item, tags, ok := ctl.bindItem(c)
	if !ok {
		return
	}
	files, err := readUploadedFiles(c, "images")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	uploaded, err := ctl.Service.Create(item, tags, files)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":         "Menu item created successfully",
		"id":              item.ID,
		"uploaded_images": uploaded,
	})
}

// PUT /menu-items/:id (multipart, images_to_delete holds image ids)
func (ctl *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, tags, ok := ctl.bindItem(c)
	if !ok {
		return
	}
	item.ID = uint(id)

	files, err := readUploadedFiles(c, "images")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	var deleteIDs []uint
	for _, raw := range c.PostFormArray("images_to_delete") {
		if imageID, err := strconv.Atoi(raw); err == nil {
			deleteIDs = append(deleteIDs, uint(imageID))
		}
	}

	uploaded, deleted, err := ctl.Service.Update(item, tags, files, deleteIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":         "Menu item updated successfully",
		"uploaded_images": uploaded,
		"deleted_images":  deleted,
	})
}

// DELETE /menu-items/:id
func (ctl *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	deleted, err := ctl.Service.Delete(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":        "Menu item deleted successfully",
		"deleted_images": deleted,
	})
}
