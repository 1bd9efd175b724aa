package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincent-petithory/dataurl"
)

// encodePNG renders a flat test image of the given size.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, s string) (image.Image, string) {
	t.Helper()

	du, err := dataurl.DecodeString(s)
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(du.Data))
	require.NoError(t, err)
	return img, du.ContentType()
}

func TestCompressDownscalesWideImages(t *testing.T) {
	data := encodePNG(t, 1600, 800)

	out, err := Compress(data, 800, 70)
	require.NoError(t, err)

	img, contentType := decodeDataURL(t, out)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy(), "aspect ratio is kept")
}

func TestCompressNeverUpscales(t *testing.T) {
	data := encodePNG(t, 200, 150)

	out, err := Compress(data, 800, 70)
	require.NoError(t, err)

	img, _ := decodeDataURL(t, out)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestCompressPreservesColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1600, 800))
	for y := 0; y < 800; y++ {
		for x := 0; x < 1600; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 230, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := Compress(buf.Bytes(), 800, 90)
	require.NoError(t, err)

	decoded, _ := decodeDataURL(t, out)
	r, g, b, _ := decoded.At(400, 200).RGBA()
	assert.Greater(t, uint32(r>>8), uint32(200), "red channel survives the resample")
	assert.Less(t, uint32(g>>8), uint32(100))
	assert.Less(t, uint32(b>>8), uint32(100))
}

func TestCompressValidation(t *testing.T) {
	data := encodePNG(t, 10, 10)

	_, err := Compress(nil, 800, 70)
	assert.Error(t, err)
	_, err = Compress(data, 0, 70)
	assert.Error(t, err)
	_, err = Compress(data, 800, 0)
	assert.Error(t, err)
	_, err = Compress(data, 800, 101)
	assert.Error(t, err)
	_, err = Compress([]byte("not an image"), 800, 70)
	assert.Error(t, err)
}

func TestPlaceholder(t *testing.T) {
	out, err := Placeholder(400, 300, "Captured Image")
	require.NoError(t, err)

	img, contentType := decodeDataURL(t, out)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestPlaceholderValidation(t *testing.T) {
	_, err := Placeholder(0, 300, "x")
	assert.Error(t, err)
	_, err = Placeholder(400, -1, "x")
	assert.Error(t, err)
}
