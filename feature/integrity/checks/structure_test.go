package checks

import (
	"context"
	"errors"
	"testing"

	"league-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestCheckStorage_CountsSnapshots(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("BucketExists", ctx, "league-sync").Return(true, nil)
	m.On("ListObjects", ctx, "league-sync", minio.ListObjectsOptions{Prefix: "snapshots/roster/", Recursive: true}).
		Return(objects("snapshots/roster/1/a.json", "snapshots/roster/2/b.json", "snapshots/roster/2/readme.txt"))
	m.On("ListObjects", ctx, "league-sync", minio.ListObjectsOptions{Prefix: "snapshots/schedule/", Recursive: true}).
		Return(objects())

	report, err := CheckStorage(ctx, m, "league-sync", "snapshots/")
	require.NoError(t, err)

	assert.True(t, report.Exists)
	assert.Equal(t, map[string]int{"roster": 2, "schedule": 0}, report.Snapshots)
}

func TestCheckStorage_MissingBucket(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("BucketExists", ctx, "league-sync").Return(false, nil)

	report, err := CheckStorage(ctx, m, "league-sync", "snapshots")
	require.NoError(t, err)

	assert.False(t, report.Exists)
	assert.Empty(t, report.Snapshots)
	m.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckStorage_BucketError(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("BucketExists", ctx, "league-sync").Return(false, errors.New("access denied"))

	_, err := CheckStorage(ctx, m, "league-sync", "snapshots")
	assert.ErrorContains(t, err, "failed to check bucket existence")
}

func TestFixStorage(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("BucketExists", ctx, "league-sync").Return(false, nil)
	m.On("MakeBucket", ctx, "league-sync", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	assert.NoError(t, FixStorage(ctx, m, "league-sync", "eu-west-1"))
	m.AssertExpectations(t)
}
