package adapter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mindala/mindala/pkg/adapter"
)

func TestLocalStoragePut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts")

	store, err := adapter.NewLocalStorage(dir)
	gt.NoError(t, err)

	// Creating the store again over the existing directory must succeed
	_, err = adapter.NewLocalStorage(dir)
	gt.NoError(t, err)

	ctx := context.Background()
	w, err := store.Put(ctx, "mandala_1700000000000.png")
	gt.NoError(t, err)

	_, err = w.Write([]byte("png-bytes"))
	gt.NoError(t, err)
	gt.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "mandala_1700000000000.png"))
	gt.NoError(t, err)
	gt.Equal(t, string(data), "png-bytes")
}

func TestLocalStorageRequiresDir(t *testing.T) {
	_, err := adapter.NewLocalStorage("")
	gt.Error(t, err)
}
