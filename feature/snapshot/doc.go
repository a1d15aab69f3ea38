// Package snapshot archives league API payloads in object storage and
// replays them as an import source.
//
// Archived runs can be re-imported without network access, which makes
// upstream regressions reproducible:
//
//	archive := snapshot.NewArchive(client, cfg.Storage, logger)
//	source := snapshot.NewReplay(archive, snapshot.Latest)
//	res, err := importer.New(source, store, logger).ImportSchedule(ctx, opts)
package snapshot
