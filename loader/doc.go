// Package loader reads labeled CSV tables into a dataset.Dataset.
//
// Every cell is parsed as a float64. Column 0 holds the label (0 or 1), the
// remaining columns hold features. A header line is skipped by default.
//
// Inputs may be compressed; the codec is chosen by file extension:
//
//	.gz   gzip  (klauspost/compress/gzip)
//	.zst  zstd  (klauspost/compress/zstd)
//	.lz4  lz4   (pierrec/lz4/v4)
//
// Load reads a named blob from any blobstore.BlobStore, so the same call
// works for local files, S3 and MinIO.
package loader
