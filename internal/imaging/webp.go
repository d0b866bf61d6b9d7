// Package imaging converts uploaded pictures to WebP.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
)

const (
	DefaultQuality = 85
	ContentType    = "image/webp"
)

// Transcoder re-encodes any decodable image as lossy WebP.
type Transcoder struct {
	Quality int
	// MaxDimension bounds the longest side; 0 keeps the original size.
	MaxDimension int
}

func NewTranscoder(quality, maxDimension int) Transcoder {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return Transcoder{Quality: quality, MaxDimension: maxDimension}
}

// ToWebP decodes data (JPEG, PNG, GIF or WebP), applies the EXIF
// orientation and encodes the result as WebP.
func (t Transcoder) ToWebP(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, content.ErrEmptyPayload
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrNotImage, err)
	}

	img = t.bound(img)

	quality := t.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (t Transcoder) bound(img image.Image) image.Image {
	if t.MaxDimension <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= t.MaxDimension && b.Dy() <= t.MaxDimension {
		return img
	}
	return imaging.Fit(img, t.MaxDimension, t.MaxDimension, imaging.Lanczos)
}
