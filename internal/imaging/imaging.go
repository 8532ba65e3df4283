// Package imaging decodes downloaded photo bytes and scales them to the
// fixed display box shown in the main window.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	dimaging "github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// Display box size
const (
	DisplayWidth  = 600
	DisplayHeight = 400
)

// ErrDecode is returned when bytes cannot be decoded as a supported image format
var ErrDecode = errors.New("cannot decode image")

// Decode decodes JPEG, PNG, GIF or WebP bytes.
// JPEG EXIF orientation is applied so portrait shots are not shown sideways.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrDecode)
	}
	img, err := dimaging.Decode(bytes.NewReader(data), dimaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Resize scales img to exactly width x height using Lanczos3 resampling
func Resize(img image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// PrepareForDisplay decodes data and scales it to the display box
func PrepareForDisplay(data []byte) (image.Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Resize(img, DisplayWidth, DisplayHeight), nil
}
