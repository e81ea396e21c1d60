package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newLocalStore(t *testing.T) (*blobImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store := newBlobImageStore(bucket, "/qr-codes/", logger).(*blobImageStore)

	return store, dir
}

func TestBlobImageStore_Persist(t *testing.T) {
	store, dir := newLocalStore(t)
	ctx := context.Background()

	url, err := store.Persist(ctx, "menu-abc.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/qr-codes/menu-abc.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "menu-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), written)
}

func TestBlobImageStore_Persist_SameKeyOverwrites(t *testing.T) {
	store, dir := newLocalStore(t)
	ctx := context.Background()

	first, err := store.Persist(ctx, "menu-abc.png", []byte("first"))
	require.NoError(t, err)

	second, err := store.Persist(ctx, "menu-abc.png", []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	written, err := os.ReadFile(filepath.Join(dir, "menu-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), written, "second write must replace the first")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".png" {
			files++
		}
	}
	assert.Equal(t, 1, files, "repeated writes must not accumulate objects")
}

func TestBlobImageStore_Persist_EmptyKey(t *testing.T) {
	store, _ := newLocalStore(t)

	_, err := store.Persist(context.Background(), "", []byte("data"))
	assert.Error(t, err)
}
