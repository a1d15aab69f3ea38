package snapshot

import (
	"context"
	"fmt"

	"league-sync/core/apa"
	"league-sync/feature/importer"

	"go.uber.org/zap"
)

// Replay is an importer.Source that serves archived payloads instead of
// calling the API. Ref is an object key or Latest.
type Replay struct {
	archive *Archive
	ref     string
}

// NewReplay creates a replaying source.
func NewReplay(archive *Archive, ref string) *Replay {
	return &Replay{archive: archive, ref: ref}
}

func (r *Replay) FetchRoster(ctx context.Context, divisionID int) (*apa.Division, error) {
	return r.fetch(ctx, importer.KindRoster, divisionID)
}

func (r *Replay) FetchSchedule(ctx context.Context, divisionID int) (*apa.Division, error) {
	return r.fetch(ctx, importer.KindSchedule, divisionID)
}

func (r *Replay) fetch(ctx context.Context, kind string, divisionID int) (*apa.Division, error) {
	key := r.ref
	if key == "" || key == Latest {
		var err error
		if key, err = r.archive.LatestKey(ctx, kind, divisionID); err != nil {
			return nil, err
		}
	}

	snap, err := r.archive.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if snap.Kind != kind {
		return nil, fmt.Errorf("snapshot %s holds a %s payload, not %s", key, snap.Kind, kind)
	}
	if snap.DivisionID != divisionID {
		r.archive.logger.Warn("Snapshot division differs from requested division",
			zap.String("key", key), zap.Int("snapshot", snap.DivisionID), zap.Int("requested", divisionID))
	}
	r.archive.logger.Info("Replaying snapshot", zap.String("key", key), zap.Time("captured_at", snap.CapturedAt))
	return snap.Division, nil
}

// Archiving wraps a live source and archives every payload it returns.
// Archive failures are logged and do not fail the fetch.
type Archiving struct {
	live    importer.Source
	archive *Archive
}

// NewArchiving creates an archiving source around live.
func NewArchiving(live importer.Source, archive *Archive) *Archiving {
	return &Archiving{live: live, archive: archive}
}

func (a *Archiving) FetchRoster(ctx context.Context, divisionID int) (*apa.Division, error) {
	payload, err := a.live.FetchRoster(ctx, divisionID)
	if err != nil {
		return nil, err
	}
	a.save(ctx, importer.KindRoster, divisionID, payload)
	return payload, nil
}

func (a *Archiving) FetchSchedule(ctx context.Context, divisionID int) (*apa.Division, error) {
	payload, err := a.live.FetchSchedule(ctx, divisionID)
	if err != nil {
		return nil, err
	}
	a.save(ctx, importer.KindSchedule, divisionID, payload)
	return payload, nil
}

func (a *Archiving) save(ctx context.Context, kind string, divisionID int, payload *apa.Division) {
	if _, err := a.archive.Save(ctx, kind, divisionID, payload); err != nil {
		a.archive.logger.Warn("Failed to archive payload", zap.String("kind", kind), zap.Int("division", divisionID), zap.Error(err))
	}
}
