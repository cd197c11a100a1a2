// Package imagenorm normalizes uploaded images before they are persisted:
// it validates type and size, shrinks oversized images into a bounding box,
// and re-encodes at decreasing quality until the result fits a byte budget.
package imagenorm

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // decode support for webp uploads
)

// ErrUndecodable marks bytes that passed type and size validation but do
// not decode as an image. Callers may choose to keep such uploads as-is.
var ErrUndecodable = errors.New("failed to decode image")

const (
	MaxFileSize = 5 * 1024 * 1024 // hard upload ceiling
	TargetSize  = 300 * 1024      // byte budget after compression
	MaxWidth    = 1200
	MaxHeight   = 800

	// Bounded linear search over JPEG quality: 80, 72, ..., 24, then the
	// floor of 20. Never more than 9 encode attempts.
	StartQuality = 80
	QualityStep  = 8
	MinQuality   = 20

	// The runtime has no webp encoder, so the output codec is the JPEG
	// fallback. Extension and content type follow the chosen codec.
	OutputContentType = "image/jpeg"
	OutputExt         = ".jpg"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Validate checks the declared content type against the allow-list and the
// size against the hard ceiling.
func Validate(contentType string, size int64) error {
	if !allowedTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("invalid file type %q, allowed formats: jpeg, jpg, png, webp", contentType)
	}
	if size > MaxFileSize {
		return fmt.Errorf("file too large, maximum size is %dMB", MaxFileSize/(1024*1024))
	}
	return nil
}

type Result struct {
	Data        []byte
	Name        string
	ContentType string

	OriginalSize   int64
	CompressedSize int64
	// Ratio is the percentage saved, rounded to two decimals; 0 when the
	// input was already under the target budget.
	Ratio float64
	// Quality is the JPEG quality of the final encode, 0 when untouched.
	Quality int
}

// Process validates the file and compresses it when it exceeds the target
// budget. Inputs already at or under the budget pass through unchanged.
func Process(name, contentType string, data []byte) (Result, error) {
	if err := Validate(contentType, int64(len(data))); err != nil {
		return Result{}, err
	}

	originalSize := int64(len(data))
	if originalSize <= TargetSize {
		return Result{
			Data:           data,
			Name:           name,
			ContentType:    contentType,
			OriginalSize:   originalSize,
			CompressedSize: originalSize,
			Ratio:          0,
		}, nil
	}

	out, quality, err := Compress(data)
	if err != nil {
		return Result{}, err
	}
	compressedSize := int64(len(out))
	ratio := float64(originalSize-compressedSize) / float64(originalSize) * 100
	return Result{
		Data:           out,
		Name:           replaceExt(name, OutputExt),
		ContentType:    OutputContentType,
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
		Ratio:          math.Round(ratio*100) / 100,
		Quality:        quality,
	}, nil
}

// Compress decodes the image, fits it into the MaxWidth x MaxHeight box
// (shrink only, aspect ratio preserved) and re-encodes as JPEG, stepping
// the quality down until the result is at or under TargetSize or the
// quality floor is reached. Returns the bytes and the quality used.
func Compress(data []byte) ([]byte, int, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxWidth || bounds.Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	quality := StartQuality
	for {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, 0, err
		}
		if buf.Len() <= TargetSize || quality <= MinQuality {
			return buf.Bytes(), quality, nil
		}
		quality -= QualityStep
		if quality < MinQuality {
			quality = MinQuality
		}
	}
}

func replaceExt(name, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "image"
	}
	return base + ext
}
