// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	ds, err := loader.Load(ctx, store, "diabetes.csv.zst")
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads through the SDK upload manager
//   - Automatic pagination for listing
//   - Custom endpoints and path-style addressing for S3-compatible servers
package s3
