package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"league-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// SnapshotKinds lists the payload kinds archived under the snapshot prefix.
var SnapshotKinds = []string{"roster", "schedule"}

// StorageReport describes the snapshot bucket.
type StorageReport struct {
	Bucket    string         `json:"bucket"`
	Exists    bool           `json:"exists"`
	Snapshots map[string]int `json:"snapshots"`
}

// CheckStorage reports whether bucket exists and how many snapshots of each
// kind it holds under prefix.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &StorageReport{Bucket: bucket, Exists: exists, Snapshots: make(map[string]int)}
	if !exists {
		return report, nil
	}

	for _, kind := range SnapshotKinds {
		opts := minio.ListObjectsOptions{
			Prefix:    path.Join(strings.Trim(prefix, "/"), kind) + "/",
			Recursive: true,
		}
		count := 0
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s snapshots: %w", kind, obj.Err)
			}
			if strings.HasSuffix(obj.Key, ".json") {
				count++
			}
		}
		report.Snapshots[kind] = count
	}

	return report, nil
}

// FixStorage creates the snapshot bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string) error {
	return storage.EnsureBucket(ctx, client, bucket, region)
}
