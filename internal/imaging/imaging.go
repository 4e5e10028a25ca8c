// Package imaging normalizes uploaded catalog images.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the maximum width or height for stored images.
const MaxDimension = 1920

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// MaxUploadSize caps the raw upload size in bytes.
const MaxUploadSize = 10 << 20

// ErrUnsupportedFormat is returned for anything that is not JPEG, PNG or WebP.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ProcessResult contains the processed image data.
type ProcessResult struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Process sniffs the format from the bytes, downscales anything larger than
// MaxDimension and re-encodes as JPEG. Transparent areas become white.
func Process(r io.Reader) (*ProcessResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	if len(data) > MaxUploadSize {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxUploadSize)
	}

	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = flatten(downscale(img, MaxDimension))

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	b := img.Bounds()
	return &ProcessResult{
		Data:   buf.Bytes(),
		MIME:   "image/jpeg",
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Save writes a processed image into dir under a random name and returns
// the file name relative to dir.
func Save(dir string, result *ProcessResult) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	name := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(dir, name), result.Data, 0644); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	return name, nil
}

// downscale resizes the image so neither dimension exceeds maxDim, keeping
// the aspect ratio. Smaller images are returned as is.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// flatten draws img over a white background. JPEG has no alpha channel.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
