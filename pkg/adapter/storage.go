package adapter

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
)

// Storage is the interface for artifact persistence. Writers returned by Put
// must be fully written and closed by the caller; the write is durable only
// after Close returns.
type Storage interface {
	Put(ctx context.Context, key string) (io.WriteCloser, error)
}

// localStorage writes artifacts under a fixed output directory.
type localStorage struct {
	dir string
}

// NewLocalStorage creates a directory-backed store. Directory creation is
// idempotent.
func NewLocalStorage(dir string) (Storage, error) {
	if dir == "" {
		return nil, goerr.New("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) Put(_ context.Context, key string) (io.WriteCloser, error) {
	path := filepath.Join(s.dir, key)
	f, err := os.Create(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create artifact file", goerr.V("path", path))
	}
	return f, nil
}

// gcsStorage writes artifacts to a Cloud Storage bucket.
type gcsStorage struct {
	bucketName string
	client     *storage.Client
}

// NewGCSStorage creates a Cloud Storage backed store.
func NewGCSStorage(ctx context.Context, bucketName string) (Storage, error) {
	if bucketName == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &gcsStorage{
		bucketName: bucketName,
		client:     client,
	}, nil
}

func (s *gcsStorage) Put(ctx context.Context, key string) (io.WriteCloser, error) {
	obj := s.client.Bucket(s.bucketName).Object(key)
	return obj.NewWriter(ctx), nil
}
