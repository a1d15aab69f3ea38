// Package league is the persisted league store.
//
// Repository wraps gorm for the five league tables (divisions, teams,
// players, team_memberships, team_matches). Store adapts it to
// reconcile.Store for the importer: teams are looked up by their upstream
// (apaTeamId, divisionId) pair, every other record by synthetic id, and all
// writes are upserts.
//
// The package also serves a read-only HTTP view of the store through the
// loader.Feature returned by NewFeature:
//
//	GET /divisions/:id
//	GET /divisions/:id/teams
//	GET /divisions/:id/matches
//	GET /divisions/:id/teams/:teamId/memberships
package league
