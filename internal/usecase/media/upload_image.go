package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/imaging"
	"github.com/hopeactionjeunesse/hope-site/internal/storage"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type UploadImageResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Transcoder turns arbitrary image bytes into WebP.
type Transcoder interface {
	ToWebP(data []byte) ([]byte, error)
}

var _ Transcoder = imaging.Transcoder{}

// ======================================================
// USE CASE
// ======================================================

type UploadImage struct {
	storage    storage.Storage
	transcoder Transcoder
	now        func() time.Time
}

func NewUploadImage(s storage.Storage, t Transcoder) *UploadImage {
	return &UploadImage{
		storage:    s,
		transcoder: t,
		now:        time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute converts data to WebP and stores it under
// <folder>/<unix-millis>-<16 hex>.webp. Nothing is written when the folder
// is unknown or the payload is not an image.
func (uc *UploadImage) Execute(
	ctx context.Context,
	data []byte,
	folder string,
) (*UploadImageResult, error) {

	f, err := content.ParseFolder(folder)
	if err != nil {
		return nil, err
	}

	webp, err := uc.transcoder.ToWebP(data)
	if err != nil {
		return nil, err
	}

	key := objectKey(f, uc.now())
	url, err := uc.storage.Put(ctx, key, webp, imaging.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	return &UploadImageResult{URL: url, Key: key}, nil
}

func objectKey(f content.Folder, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return fmt.Sprintf("%s/%d-%s.webp", f, now.UnixMilli(), suffix)
}
