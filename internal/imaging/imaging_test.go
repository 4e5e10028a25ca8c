package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTransparentPNG(w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img
}

func TestProcessJPEG(t *testing.T) {
	result, err := Process(bytes.NewReader(createTestJPEG(100, 80)))
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", result.MIME)
	assert.Equal(t, 100, result.Width)
	assert.Equal(t, 80, result.Height)
	assert.NotEmpty(t, result.Data)
}

func TestProcessPNGFlattensTransparency(t *testing.T) {
	result, err := Process(bytes.NewReader(createTransparentPNG(20, 20)))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", result.MIME)

	r, g, b, _ := decode(t, result.Data).At(10, 10).RGBA()
	// JPEG is lossy; a fully transparent source should come out near white.
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestProcessDownscale(t *testing.T) {
	result, err := Process(bytes.NewReader(createTestJPEG(4000, 2000)))
	require.NoError(t, err)

	bounds := decode(t, result.Data).Bounds()
	assert.Equal(t, MaxDimension, bounds.Dx())
	assert.Equal(t, MaxDimension/2, bounds.Dy())
}

func TestProcessSmallImageNotUpscaled(t *testing.T) {
	result, err := Process(bytes.NewReader(createTestJPEG(50, 50)))
	require.NoError(t, err)

	bounds := decode(t, result.Data).Bounds()
	assert.Equal(t, 50, bounds.Dx())
	assert.Equal(t, 50, bounds.Dy())
}

func TestProcessRejectsUnsupportedFormats(t *testing.T) {
	_, err := Process(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Process(strings.NewReader("GIF89a..."))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestProcessAcceptsWebPSignature(t *testing.T) {
	// A WebP header passes the sniff; the broken body then fails to decode.
	data := []byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00garbage-garbage-garbage")
	_, err := Process(bytes.NewReader(data))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "decoding image")
}

func TestProcessRejectsOversizedInput(t *testing.T) {
	data := make([]byte, MaxUploadSize+10)
	copy(data, createTestJPEG(10, 10))
	_, err := Process(bytes.NewReader(data))
	assert.ErrorContains(t, err, "exceeds")
}

func TestSaveWritesJPEG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	result, err := Process(bytes.NewReader(createTestJPEG(30, 30)))
	require.NoError(t, err)

	name, err := Save(dir, result)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, strings.TrimSuffix(name, ".jpg"), 36)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	decode(t, data)

	other, err := Save(dir, result)
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestSaveFailsOnUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Save(file, &ProcessResult{Data: []byte("x")})
	assert.ErrorContains(t, err, "creating upload dir")
}
