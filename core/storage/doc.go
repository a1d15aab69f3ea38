// Package storage wraps the MinIO client used for the snapshot archive.
//
// Fetched roster and schedule payloads can be archived to an S3-compatible
// bucket and replayed later in place of the live API. The Client interface is
// the narrow slice of minio-go the archive calls, which keeps it mockable
// (see core/storage/mocks).
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
