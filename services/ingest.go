package services

import (
	"errors"
	"log"

	"savoria/pkg/imagenorm"
	"savoria/pkg/upload"
)

// UploadedFile is one entry of a multipart image batch, already read into
// memory by the controller.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ingestImage normalizes an uploaded image and persists it. Validation
// failures propagate so the caller can skip the file; bytes that validated
// but will not decode fall back to storing the original upload untouched.
func ingestImage(store *upload.Store, f UploadedFile) (upload.Stored, error) {
	res, err := imagenorm.Process(f.Name, f.ContentType, f.Data)
	switch {
	case errors.Is(err, imagenorm.ErrUndecodable):
		log.Printf("normalization failed for %s, storing original: %v", f.Name, err)
		return store.Save(f.Data, f.Name)
	case err != nil:
		return upload.Stored{}, err
	}

	if res.Ratio > 0 {
		log.Printf("compressed %s: %d -> %d bytes (%.2f%% saved)",
			f.Name, res.OriginalSize, res.CompressedSize, res.Ratio)
	}
	return store.Save(res.Data, res.Name)
}
