package controllers

import (
	"encoding/json"
	"io"
	"log"

	"savoria/services"

	"github.com/gin-gonic/gin"
)

// readUploadedFiles drains the named multipart field into memory. A request
// without a multipart body simply yields no files.
func readUploadedFiles(c *gin.Context, field string) ([]services.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var files []services.UploadedFile
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, services.UploadedFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

// parseJSONList decodes a form field holding a JSON array of strings.
// A malformed field is logged and treated as empty, matching the tolerance
// of the admin forms that produce it.
func parseJSONList(raw, field string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("ignoring malformed %s field: %v", field, err)
		return nil
	}
	return list
}
