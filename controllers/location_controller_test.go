package controllers

import (
	"fmt"
	"testing"

	"savoria/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locationRouter(env *testEnv) *gin.Engine {
	r := gin.New()
	ctl := NewLocationController(env.Locations)
	r.GET("/locations", ctl.List)
	r.POST("/locations", ctl.Create)
	r.GET("/locations/:id", ctl.Get)
	r.PUT("/locations/:id", ctl.Update)
	r.DELETE("/locations/:id", ctl.Delete)
	return r
}

func locationFields() map[string]string {
	return map[string]string{
		"name":           "Downtown",
		"address":        "12 Corniche Road",
		"phone":          "+966 11 000 0000",
		"email":          "downtown@example.com",
		"hours":          "Sun-Thu 12:00-23:00",
		"description":    "Flagship branch",
		"features":       `["Outdoor Seating","Valet Parking"]`,
		"coordinatesLat": "24.7136",
		"coordinatesLng": "46.6753",
	}
}

func TestLocationCreateWithImages(t *testing.T) {
	env := setupEnv(t)
	r := locationRouter(env)

	w := doMultipart(t, r, "POST", "/locations", locationFields(), []formFile{
		jpegUpload("images", "front.jpg", []byte("front-bytes")),
		jpegUpload("images", "inside.jpg", []byte("inside-bytes")),
	})
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	locationID := int(body["locationId"].(float64))
	images := body["images"].([]interface{})
	require.Len(t, images, 2)
	assert.Equal(t, true, images[0].(map[string]interface{})["is_primary"])
	assert.Equal(t, false, images[1].(map[string]interface{})["is_primary"])

	w = doJSON(t, r, "GET", fmt.Sprintf("/locations/%d", locationID), nil)
	require.Equal(t, 200, w.Code)
	loc := decodeBody(t, w)
	assert.Equal(t, "Downtown", loc["name"])
	assert.Equal(t, []interface{}{"Outdoor Seating", "Valet Parking"}, loc["features"])
	assert.InDelta(t, 24.7136, loc["coordinates_lat"].(float64), 1e-9)
	listed := loc["images"].([]interface{})
	require.Len(t, listed, 2)
	assert.Equal(t, true, listed[0].(map[string]interface{})["is_primary"], "primary image sorts first")
}

func TestLocationCreateValidation(t *testing.T) {
	env := setupEnv(t)
	r := locationRouter(env)

	w := doMultipart(t, r, "POST", "/locations", map[string]string{"address": "somewhere"}, nil)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Location name is required", decodeBody(t, w)["error"])

	w = doMultipart(t, r, "POST", "/locations", map[string]string{"name": "Downtown"}, nil)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Location address is required", decodeBody(t, w)["error"])
}

func TestLocationCreateWithoutCoordinates(t *testing.T) {
	env := setupEnv(t)
	r := locationRouter(env)

	fields := locationFields()
	delete(fields, "coordinatesLat")
	delete(fields, "coordinatesLng")
	delete(fields, "features")
	w := doMultipart(t, r, "POST", "/locations", fields, nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, r, "GET", "/locations", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Nil(t, list[0]["coordinates_lat"])
	assert.Equal(t, []interface{}{}, list[0]["features"])
	assert.Equal(t, []interface{}{}, list[0]["images"])
}

func TestLocationUpdateSwapsImages(t *testing.T) {
	env := setupEnv(t)
	r := locationRouter(env)

	w := doMultipart(t, r, "POST", "/locations", locationFields(), []formFile{
		jpegUpload("images", "old.jpg", []byte("old-bytes")),
	})
	require.Equal(t, 200, w.Code)
	locationID := int(decodeBody(t, w)["locationId"].(float64))

	var oldImage entity.LocationImage
	require.NoError(t, env.DB.Where("location_id = ?", locationID).First(&oldImage).Error)
	require.True(t, env.Store.Exists(oldImage.Filename))

	fields := locationFields()
	fields["images_to_delete"] = fmt.Sprintf(`[%q]`, oldImage.Filename)
	w = doMultipart(t, r, "PUT", fmt.Sprintf("/locations/%d", locationID), fields, []formFile{
		jpegUpload("images", "new.jpg", []byte("new-bytes")),
	})
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["deleted_images"])
	assert.EqualValues(t, 1, body["uploaded_images"])

	assert.False(t, env.Store.Exists(oldImage.Filename))

	var images []entity.LocationImage
	require.NoError(t, env.DB.Where("location_id = ?", locationID).Find(&images).Error)
	require.Len(t, images, 1)
	assert.NotEqual(t, oldImage.Filename, images[0].Filename)
	assert.False(t, images[0].IsPrimary, "images added on update are not primary")
	assert.True(t, env.Store.Exists(images[0].Filename))
}

func TestLocationUpdateNotFound(t *testing.T) {
	env := setupEnv(t)
	r := locationRouter(env)

	w := doMultipart(t, r, "PUT", "/locations/999", locationFields(), nil)
	assert.Equal(t, 404, w.Code)
}

func TestLocationDeleteCascades(t *testing.T) {
	env := setupEnv(t)
	r := locationRouter(env)

	w := doMultipart(t, r, "POST", "/locations", locationFields(), []formFile{
		jpegUpload("images", "a.jpg", []byte("aaa")),
	})
	require.Equal(t, 200, w.Code)
	locationID := int(decodeBody(t, w)["locationId"].(float64))

	var filenames []string
	require.NoError(t, env.DB.Model(&entity.LocationImage{}).
		Where("location_id = ?", locationID).
		Pluck("filename", &filenames).Error)
	require.Len(t, filenames, 1)
	filename := filenames[0]

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/locations/%d", locationID), nil)
	require.Equal(t, 200, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["deleted_images"])

	assert.False(t, env.Store.Exists(filename))
	var count int64
	env.DB.Model(&entity.LocationImage{}).Count(&count)
	assert.Zero(t, count)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/locations/%d", locationID), nil)
	assert.Equal(t, 404, w.Code)
}
