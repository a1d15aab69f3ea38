// Package reconcile decides what an import does with each incoming record.
//
// Every canonical record produced by the importer passes through an Engine,
// which consults a Store and settles on exactly one outcome:
//
//   - create: nothing with the record's identity exists, the record is written
//   - skip_existing: an equivalent record exists, nothing is written
//   - skip_conflict: a record exists but has diverged, nothing is written and
//     the divergent fields are reported
//   - upsert: the record is written unconditionally (memberships only)
//
// Records that already exist are never overwritten. That property is what
// makes repeated imports idempotent and keeps user-entered data (lineups,
// scores) intact.
//
// # Dry runs
//
// DryRun is a Store that never touches persistence. Writes are recorded as
// intents and later lookups are answered from those intents before the
// underlying reader, so a dry run reports the same counters a real run would.
//
//	store := reconcile.NewDryRun(repoStore)
//	engine := reconcile.NewEngine(store, logger)
//	decision, err := engine.Reconcile(ctx, team)
package reconcile
