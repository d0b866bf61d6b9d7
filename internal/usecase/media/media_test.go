package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/imaging"
)

type fakeStorage struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStorage) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.puts[key] = data
	f.types[key] = contentType
	return "https://cdn.test/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) KeyFromURL(url string) (string, bool) {
	return strings.CutPrefix(url, "https://cdn.test/")
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var teamKey = regexp.MustCompile(`^team/\d+-[0-9a-f]{16}\.webp$`)

func TestUploadImageStoresWebP(t *testing.T) {
	store := newFakeStorage()
	uc := NewUploadImage(store, imaging.NewTranscoder(85, 0))
	uc.now = func() time.Time { return time.UnixMilli(1700000000123) }

	res, err := uc.Execute(context.Background(), pngBytes(t), "team")
	require.NoError(t, err)

	assert.Regexp(t, teamKey, res.Key)
	assert.True(t, strings.HasPrefix(res.Key, "team/1700000000123-"))
	assert.Equal(t, "https://cdn.test/"+res.Key, res.URL)
	assert.Equal(t, "image/webp", store.types[res.Key])
	assert.Equal(t, "RIFF", string(store.puts[res.Key][:4]))
}

func TestUploadImageKeysAreUnique(t *testing.T) {
	store := newFakeStorage()
	uc := NewUploadImage(store, imaging.NewTranscoder(85, 0))
	uc.now = func() time.Time { return time.UnixMilli(42) }

	a, err := uc.Execute(context.Background(), pngBytes(t), "services")
	require.NoError(t, err)
	b, err := uc.Execute(context.Background(), pngBytes(t), "services")
	require.NoError(t, err)
	assert.NotEqual(t, a.Key, b.Key)
	assert.Len(t, store.puts, 2)
}

func TestUploadImageRejectsNonImageWithoutWriting(t *testing.T) {
	store := newFakeStorage()
	uc := NewUploadImage(store, imaging.NewTranscoder(85, 0))

	_, err := uc.Execute(context.Background(), []byte("hello, not an image"), "projects")
	assert.ErrorIs(t, err, content.ErrNotImage)
	assert.Empty(t, store.puts)
}

func TestUploadImageRejectsUnknownFolder(t *testing.T) {
	store := newFakeStorage()
	uc := NewUploadImage(store, imaging.NewTranscoder(85, 0))

	_, err := uc.Execute(context.Background(), pngBytes(t), "avatars")
	assert.ErrorIs(t, err, content.ErrInvalidFolder)
	assert.Empty(t, store.puts)
}

func TestUploadImagePropagatesStorageFailure(t *testing.T) {
	store := newFakeStorage()
	store.putErr = errors.New("bucket gone")
	uc := NewUploadImage(store, imaging.NewTranscoder(85, 0))

	_, err := uc.Execute(context.Background(), pngBytes(t), "team")
	assert.ErrorContains(t, err, "bucket gone")
}

func TestDeleteImage(t *testing.T) {
	store := newFakeStorage()
	uc := NewDeleteImage(store)

	deleted, err := uc.Execute(context.Background(), "https://cdn.test/team/1-0123456789abcdef.webp")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"team/1-0123456789abcdef.webp"}, store.deleted)

	deleted, err = uc.Execute(context.Background(), "https://elsewhere.test/team/1.webp")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = uc.Execute(context.Background(), "https://cdn.test/private/report.pdf")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, store.deleted, 1)
}
