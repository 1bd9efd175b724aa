// Package imaging provides pure-Go image compression and placeholder
// rendering for the editor. No CGo, so it stays compatible with
// CGO_ENABLED=0 builds.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"math/rand"

	"github.com/vincent-petithory/dataurl"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Compress decodes an image, scales it down to at most maxWidth pixels wide
// (maintaining aspect ratio, never upscaling) and re-encodes it as a JPEG
// data URL at the given quality.
func Compress(data []byte, maxWidth, quality int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}
	if maxWidth <= 0 {
		return "", fmt.Errorf("invalid max width %d", maxWidth)
	}
	if quality <= 0 || quality > 100 {
		return "", fmt.Errorf("invalid quality %d", quality)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	origWidth := bounds.Dx()
	origHeight := bounds.Dy()

	// Resize only if wider than maxWidth (never upscale)
	resized := img
	if origWidth > maxWidth {
		newWidth := maxWidth
		newHeight := origHeight * maxWidth / origWidth
		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		resized = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode JPEG: %w", err)
	}

	return dataurl.New(buf.Bytes(), "image/jpeg").String(), nil
}

// Placeholder renders a solid-color placeholder with the label centered in
// white, encoded as a PNG data URL. Stands in for camera capture in the
// editor, which has no device access on the server.
func Placeholder(width, height int, label string) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid placeholder size %dx%d", width, height)
	}

	bg := color.RGBA{
		R: uint8(rand.Intn(200) + 30),
		G: uint8(rand.Intn(200) + 30),
		B: uint8(rand.Intn(200) + 30),
		A: 255,
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	if label != "" {
		face := basicfont.Face7x13
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
		}
		textWidth := d.MeasureString(label).Ceil()
		d.Dot = fixed.Point26_6{
			X: fixed.I((width - textWidth) / 2),
			Y: fixed.I((height + face.Height/2) / 2),
		}
		d.DrawString(label)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode PNG: %w", err)
	}

	return dataurl.New(buf.Bytes(), "image/png").String(), nil
}
