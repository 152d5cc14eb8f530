package minio

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/partknn/blobstore"
)

func TestNew(t *testing.T) {
	store, err := New(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "datasets",
		Prefix:    "runs/",
	})
	require.NoError(t, err)
	assert.Equal(t, "datasets", store.Bucket())
	assert.Equal(t, "runs/train.csv", store.key("train.csv"))

	_, err = New(Config{Bucket: "b"})
	require.Error(t, err)
	_, err = New(Config{Endpoint: "localhost:9000"})
	require.Error(t, err)
}

// TestStore_Integration requires a running MinIO instance.
// Set MINIO_ENDPOINT (and optionally MINIO_ACCESS_KEY, MINIO_SECRET_KEY) to run it.
func TestStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("Skipping MinIO integration test: MINIO_ENDPOINT not set")
	}
	access, secret := os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY")
	if access == "" {
		access, secret = "minioadmin", "minioadmin"
	}

	store, err := New(Config{Endpoint: endpoint, AccessKey: access, SecretKey: secret, Bucket: "test-partknn", Prefix: "test-prefix/"})
	require.NoError(t, err)

	ctx := context.Background()
	exists, err := store.client.BucketExists(ctx, store.bucket)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, store.bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("label,x\n0,1\n1,2\n")
	require.NoError(t, store.Put(ctx, "train.csv", data))

	blob, err := store.Open(ctx, "train.csv")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, data, buf[:n])

	r, err := blobstore.NewReader(ctx, blob)
	require.NoError(t, err)
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, all)
	require.NoError(t, r.Close())
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "train.csv")

	require.NoError(t, store.Delete(ctx, "train.csv"))
	_, err = store.Open(ctx, "train.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
