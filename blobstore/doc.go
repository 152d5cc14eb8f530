// Package blobstore provides read access to dataset files wherever they live.
//
// BlobStore is the interface the loader reads datasets through.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, read through a read-only mmap
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Locations
//
// ParseLocation splits "s3://bucket/key", "minio://bucket/key" and plain
// paths into a scheme, a bucket (the directory for local paths) and a name
// the matching store can open.
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blobs that already live in memory should also implement Mappable, which
// lets NewReader skip the copy.
package blobstore
