// Package database opens the league store and inspects its schema.
//
// Connect wraps GORM and supports two drivers: mysql for deployments and
// sqlite for local runs and tests (Name is then a file path or ":memory:").
//
// GetTableColumns and MissingColumns back the migrate command's schema check,
// which confirms every league table carries the columns the importer writes.
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "team_matches", []string{"lineup_plan"})
package database
