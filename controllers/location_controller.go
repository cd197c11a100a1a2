package controllers

import (
	"errors"
	"strconv"

	"savoria/entity"
	"savoria/pkg/resp"
	"savoria/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LocationController struct {
	Service *services.LocationService
}

func NewLocationController(s *services.LocationService) *LocationController {
	return &LocationController{Service: s}
}

func normalizeLocation(location *entity.Location) *entity.Location {
	if location.Features == nil {
		location.Features = entity.StringList{}
	}
	if location.Images == nil {
		location.Images = []entity.LocationImage{}
	}
	return location
}

// GET /locations
func (ctl *LocationController) List(c *gin.Context) {
	locations, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]*entity.Location, 0, len(locations))
	for i := range locations {
		out = append(out, normalizeLocation(&locations[i]))
	}
	resp.OK(c, out)
}

// GET /locations/:id
func (ctl *LocationController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	location, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Location not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, normalizeLocation(location))
}

func (ctl *LocationController) bindLocation(c *gin.Context) (*entity.Location, bool) {
	name := c.PostForm("name")
	address := c.PostForm("address")
	if name == "" {
		resp.BadRequest(c, "Location name is required")
		return nil, false
	}
	if address == "" {
		resp.BadRequest(c, "Location address is required")
		return nil, false
	}

	location := &entity.Location{
		Name:        name,
		Address:     address,
		Phone:       c.PostForm("phone"),
		Email:       c.PostForm("email"),
		Hours:       c.PostForm("hours"),
		Description: c.PostForm("description"),
		Features:    entity.StringList(parseJSONList(c.PostForm("features"), "features")),
	}
	if location.Features == nil {
		location.Features = entity.StringList{}
	}
	if lat, err := strconv.ParseFloat(c.PostForm("coordinatesLat"), 64); err == nil {
		location.CoordinatesLat = &lat
	}
	if lng, err := strconv.ParseFloat(c.PostForm("coordinatesLng"), 64); err == nil {
		location.CoordinatesLng = &lng
	}
	return location, true
}

// POST /locations (multipart, first image becomes primary)
func (ctl *LocationController) Create(c *gin.Context) {
	location, ok := ctl.bindLocation(c)
	if !ok {
		return
	}
	files, err := readUploadedFiles(c, "images")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	images, err := ctl.Service.Create(location, files)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if images == nil {
		images = []entity.LocationImage{}
	}
	resp.OK(c, gin.H{
		"message":    "Location created successfully",
		"locationId": location.ID,
		"images":     images,
	})
}

// PUT /locations/:id (multipart, images_to_delete is a JSON array of filenames)
func (ctl *LocationController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	location, ok := ctl.bindLocation(c)
	if !ok {
		return
	}
	location.ID = uint(id)

	files, err := readUploadedFiles(c, "images")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	deleteFilenames := parseJSONList(c.PostForm("images_to_delete"), "images_to_delete")

	uploaded, deleted, err := ctl.Service.Update(location, files, deleteFilenames)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Location not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":         "Location updated successfully",
		"uploaded_images": uploaded,
		"deleted_images":  deleted,
	})
}

// DELETE /locations/:id
func (ctl *LocationController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	deleted, err := ctl.Service.Delete(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Location not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":        "Location deleted successfully",
		"deleted_images": deleted,
	})
}
