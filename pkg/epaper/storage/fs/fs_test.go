package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

func TestNewRequiresBaseDir(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := New(Config{BaseDir: t.TempDir()})
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Upload(ctx, "uploads/ed1/page1.png", strings.NewReader("page render"))
	require.NoError(t, err)

	rc, err := store.Download(ctx, "uploads/ed1/page1.png")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "page render", string(data))

	meta, err := store.GetAssetMeta(ctx, "uploads/ed1/page1.png")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), meta.Size)
	assert.NotEmpty(t, meta.ContentType)

	require.NoError(t, store.Delete(ctx, "uploads/ed1/page1.png"))
	_, err = store.Download(ctx, "uploads/ed1/page1.png")
	assert.ErrorIs(t, err, epaper.ErrAssetNotFound)
}

func TestDeleteCleansEmptyDirectories(t *testing.T) {
	baseDir := t.TempDir()
	store, err := New(Config{BaseDir: baseDir})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "thumbnails/ed1/page1", strings.NewReader("x")))
	require.NoError(t, store.Delete(ctx, "thumbnails/ed1/page1"))

	_, err = os.Stat(filepath.Join(baseDir, "thumbnails"))
	assert.True(t, os.IsNotExist(err), "empty key directories are removed")

	_, err = os.Stat(baseDir)
	assert.NoError(t, err, "base directory survives")
}

func TestStoreMissingKey(t *testing.T) {
	store, err := New(Config{BaseDir: t.TempDir()})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Download(ctx, "missing")
	assert.ErrorIs(t, err, epaper.ErrAssetNotFound)
	_, err = store.GetAssetMeta(ctx, "missing")
	assert.ErrorIs(t, err, epaper.ErrAssetNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), epaper.ErrAssetNotFound)
}
