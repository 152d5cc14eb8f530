package main

import (
	"context"

	"github.com/hupe1980/partknn/blobstore"
	minioblob "github.com/hupe1980/partknn/blobstore/minio"
	s3blob "github.com/hupe1980/partknn/blobstore/s3"
)

// openStore resolves -data to a store and the blob name inside it.
func openStore(ctx context.Context, cfg *config) (blobstore.Location, blobstore.BlobStore, error) {
	loc, err := blobstore.ParseLocation(cfg.data)
	if err != nil {
		return blobstore.Location{}, nil, &usageError{err.Error()}
	}

	switch loc.Scheme {
	case blobstore.SchemeS3:
		opts := []func(*s3blob.Options){}
		if cfg.s3Region != "" {
			opts = append(opts, s3blob.WithRegion(cfg.s3Region))
		}
		if cfg.s3Endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(cfg.s3Endpoint))
		}
		if cfg.s3PathStyle {
			opts = append(opts, s3blob.WithPathStyle())
		}
		store, err := s3blob.New(ctx, loc.Bucket, opts...)
		if err != nil {
			return loc, nil, err
		}
		return loc, store, nil

	case blobstore.SchemeMinio:
		if cfg.minioEndpoint == "" {
			return loc, nil, &usageError{"minio:// data needs -minio-endpoint or MINIO_ENDPOINT"}
		}
		store, err := minioblob.New(minioblob.Config{
			Endpoint:  cfg.minioEndpoint,
			AccessKey: cfg.minioAccessKey,
			SecretKey: cfg.minioSecretKey,
			Secure:    cfg.minioSecure,
			Bucket:    loc.Bucket,
		})
		if err != nil {
			return loc, nil, err
		}
		return loc, store, nil

	default:
		return loc, blobstore.NewLocalStore(loc.Bucket), nil
	}
}
