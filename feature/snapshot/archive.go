package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"league-sync/core/apa"
	"league-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Latest selects the most recent snapshot of a kind and division.
const Latest = "latest"

const keyTimeLayout = "20060102T150405.000000000Z"

// ErrNotFound is returned when no snapshot matches a lookup.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one archived API payload.
type Snapshot struct {
	Kind       string        `json:"kind"`
	DivisionID int           `json:"divisionId"`
	CapturedAt time.Time     `json:"capturedAt"`
	Division   *apa.Division `json:"division"`
}

// Archive stores payload snapshots as JSON objects under
// <prefix>/<kind>/<divisionID>/<timestamp>.json.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	clock  func() time.Time
}

// NewArchive creates an archive over client using the bucket and prefix of cfg.
func NewArchive(client storage.Client, cfg storage.Config, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		logger: logger,
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

func (a *Archive) dir(kind string, divisionID int) string {
	return path.Join(a.prefix, kind, strconv.Itoa(divisionID)) + "/"
}

// Key returns the object key of a snapshot captured at capturedAt.
func (a *Archive) Key(kind string, divisionID int, capturedAt time.Time) string {
	return a.dir(kind, divisionID) + capturedAt.UTC().Format(keyTimeLayout) + ".json"
}

// Save archives payload and returns its object key.
func (a *Archive) Save(ctx context.Context, kind string, divisionID int, payload *apa.Division) (string, error) {
	snap := Snapshot{Kind: kind, DivisionID: divisionID, CapturedAt: a.clock(), Division: payload}
	body, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := a.Key(kind, divisionID, snap.CapturedAt)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot %s: %w", key, err)
	}

	a.logger.Info("Archived payload", zap.String("bucket", a.bucket), zap.String("key", key), zap.Int("bytes", len(body)))
	return key, nil
}

// Load reads the snapshot stored at key.
func (a *Archive) Load(ctx context.Context, key string) (*Snapshot, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download snapshot %s: %w", key, err)
	}
	defer obj.Close()

	var snap Snapshot
	if err := json.NewDecoder(obj).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	if snap.Division == nil {
		return nil, fmt.Errorf("snapshot %s has no division payload", key)
	}
	return &snap, nil
}

// LatestKey returns the key of the newest snapshot of kind for divisionID.
func (a *Archive) LatestKey(ctx context.Context, kind string, divisionID int) (string, error) {
	var latest string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.dir(kind, divisionID),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return "", fmt.Errorf("list snapshots: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") && obj.Key > latest {
			latest = obj.Key
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: %s for division %d", ErrNotFound, kind, divisionID)
	}
	return latest, nil
}
