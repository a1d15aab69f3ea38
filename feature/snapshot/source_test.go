package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"league-sync/core/apa"
	"league-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	division *apa.Division
	err      error
}

func (s *stubSource) FetchRoster(_ context.Context, _ int) (*apa.Division, error) {
	return s.division, s.err
}

func (s *stubSource) FetchSchedule(_ context.Context, _ int) (*apa.Division, error) {
	return s.division, s.err
}

func encoded(t *testing.T, snap Snapshot) io.ReadCloser {
	t.Helper()
	b, err := json.Marshal(snap)
	require.NoError(t, err)
	return io.NopCloser(bytes.NewReader(b))
}

func TestReplay_Latest(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	key := "snapshots/schedule/418320/20250110T120000.000000000Z.json"

	m.On("ListObjects", ctx, "league-sync", minio.ListObjectsOptions{Prefix: "snapshots/schedule/418320/", Recursive: true}).
		Return(listing(key))
	m.On("GetObject", ctx, "league-sync", key, minio.GetObjectOptions{}).
		Return(encoded(t, Snapshot{Kind: "schedule", DivisionID: 418320, CapturedAt: capturedAt, Division: payload()}), nil)

	got, err := NewReplay(newTestArchive(m), Latest).FetchSchedule(ctx, 418320)
	require.NoError(t, err)
	assert.Equal(t, payload(), got)
	m.AssertExpectations(t)
}

func TestReplay_ExplicitKeyOfWrongKind(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("GetObject", ctx, "league-sync", "k.json", minio.GetObjectOptions{}).
		Return(encoded(t, Snapshot{Kind: "schedule", DivisionID: 1, Division: payload()}), nil)

	_, err := NewReplay(newTestArchive(m), "k.json").FetchRoster(ctx, 1)
	assert.ErrorContains(t, err, "holds a schedule payload, not roster")
	m.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchiving_SavesLivePayload(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("PutObject", ctx, "league-sync", "snapshots/roster/418320/20250110T120000.000000000Z.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	got, err := NewArchiving(&stubSource{division: payload()}, newTestArchive(m)).FetchRoster(ctx, 418320)
	require.NoError(t, err)
	assert.Equal(t, payload(), got)
	m.AssertExpectations(t)
}

func TestArchiving_ArchiveFailureDoesNotFailFetch(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("PutObject", ctx, "league-sync", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("offline"))

	got, err := NewArchiving(&stubSource{division: payload()}, newTestArchive(m)).FetchSchedule(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestArchiving_LiveErrorSkipsArchive(t *testing.T) {
	m := new(mocks.Client)
	boom := errors.New("unauthorized")

	_, err := NewArchiving(&stubSource{err: boom}, newTestArchive(m)).FetchRoster(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	m.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
