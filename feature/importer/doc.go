// Package importer turns league API payloads into league store records.
//
// Two drivers share one pipeline: fetch from a Source, transform each
// upstream record into a canonical model, and pass it through a
// reconcile.Engine.
//
//   - ImportRoster creates the division, its teams and players, and upserts
//     every membership.
//   - ImportSchedule creates matches, resolving team numbers through a
//     TeamMap built from the store (or, in a dry run, from the payload).
//
// Byes, missing rosters, unresolved teams, invalid roster entries and
// unusable start times become warnings on the Result rather than errors.
// Only fetch and store failures abort a run.
package importer
