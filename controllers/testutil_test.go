package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"savoria/configs"
	"savoria/entity"
	"savoria/pkg/upload"
	"savoria/repository"
	"savoria/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

type testEnv struct {
	DB    *gorm.DB
	Store *upload.Store

	MenuItems *services.MenuItemService
	Locations *services.LocationService
	Images    *repository.ImageRepository
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupDB(t)
	store := upload.NewStore(t.TempDir())
	imageRepo := repository.NewImageRepository(db)
	return &testEnv{
		DB:        db,
		Store:     store,
		MenuItems: services.NewMenuItemService(repository.NewMenuItemRepository(db), imageRepo, store),
		Locations: services.NewLocationService(repository.NewLocationRepository(db), store),
		Images:    imageRepo,
	}
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string) entity.Category {
	t.Helper()
	category := entity.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

type formFile struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// buildMultipart assembles a multipart body; file parts carry an explicit
// Content-Type so the normalizer's allow-list sees what browsers send.
func buildMultipart(t *testing.T, fields map[string]string, files []formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, files []formFile) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := buildMultipart(t, fields, files)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}
