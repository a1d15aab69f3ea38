package integrity

import (
	"context"
	"testing"

	"league-sync/core/storage"
	"league-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_WithoutStorage(t *testing.T) {
	svc := NewService(nil, nil, storage.Config{Bucket: "b"}, nil)

	_, err := svc.CheckStorage(context.Background())
	assert.ErrorContains(t, err, "storage is not configured")
	assert.ErrorContains(t, svc.FixStorage(context.Background()), "storage is not configured")

	_, err = svc.CheckSchema()
	assert.Error(t, err)
}

func TestService_FixStorageUsesRegion(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("BucketExists", ctx, "b").Return(false, nil)
	m.On("MakeBucket", ctx, "b", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

	svc := NewService(nil, m, storage.Config{Bucket: "b", Region: "us-east-1"}, nil)
	require.NoError(t, svc.FixStorage(ctx))
	m.AssertExpectations(t)
}

func TestService_CheckSchema(t *testing.T) {
	report, err := NewService(migratedDB(t), nil, storage.Config{}, nil).CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Contains(t, report.Tables, "team_matches")
}
