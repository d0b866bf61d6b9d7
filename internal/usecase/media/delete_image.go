package media

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/storage"
)

type DeleteImage struct {
	storage storage.Storage
}

func NewDeleteImage(s storage.Storage) *DeleteImage {
	return &DeleteImage{storage: s}
}

// Execute removes a previously uploaded image. URLs that were not produced by
// the configured storage, or that point outside the upload folders, are
// ignored. It reports whether an object was targeted.
func (uc *DeleteImage) Execute(ctx context.Context, url string) (bool, error) {
	key, ok := uc.storage.KeyFromURL(strings.TrimSpace(url))
	if !ok {
		logrus.WithField("url", url).Info("[media] delete skipped, url not managed by storage")
		return false, nil
	}

	folder, _, found := strings.Cut(key, "/")
	if !found || !content.Folder(folder).Valid() {
		logrus.WithField("key", key).Warn("[media] delete skipped, key outside upload folders")
		return false, nil
	}

	if err := uc.storage.Delete(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}
