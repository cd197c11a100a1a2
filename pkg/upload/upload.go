// Package upload persists uploaded binaries under the public uploads
// directory. Files are referenced by generated filename only, no subfolders.
package upload

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultDir = "public/uploads"

type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{Dir: dir}
}

type Stored struct {
	Filename string
	Size     int64
}

// Save writes the bytes under a generated name and returns its metadata.
// The name embeds a millisecond timestamp plus a random token, so two
// concurrent uploads cannot collide.
func (s *Store) Save(data []byte, originalName string) (Stored, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return Stored{}, err
	}
	filename := generateFilename(originalName)
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Stored{}, err
	}
	return Stored{Filename: filename, Size: int64(len(data))}, nil
}

// Remove deletes a stored file. A missing file is logged and swallowed:
// metadata cleanup must not be blocked by filesystem drift.
func (s *Store) Remove(filename string) {
	if filename == "" {
		return
	}
	path := filepath.Join(s.Dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		log.Printf("failed to delete file %s: %v", filename, err)
	}
}

// Exists reports whether a stored file is present on disk.
func (s *Store) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, filepath.Base(filename)))
	return err == nil
}

func generateFilename(originalName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		ext = "jpg"
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
	return fmt.Sprintf("%d_%s.%s", time.Now().UnixMilli(), random, ext)
}
