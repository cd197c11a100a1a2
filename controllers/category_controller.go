package controllers

import (
	"errors"
	"strconv"
	"strings"

	"savoria/entity"
	"savoria/pkg/resp"
	"savoria/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	Repo *repository.CategoryRepository
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{Repo: repository.NewCategoryRepository(db)}
}

type CategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		resp.BadRequest(c, "Category name is required")
		return
	}

	category := entity.Category{Name: req.Name, Icon: req.Icon}
	if err := ctl.Repo.Create(&category); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, category)
}

// PUT /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		resp.BadRequest(c, "Category name is required")
		return
	}

	category := entity.Category{ID: uint(id), Name: req.Name, Icon: req.Icon}
	if err := ctl.Repo.Update(&category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	updated, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryInUse):
			resp.BadRequest(c, "Cannot delete category with existing menu items. Please delete or reassign the menu items first.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "Category deleted successfully"})
}
