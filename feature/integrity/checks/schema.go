package checks

import (
	"fmt"

	"league-sync/core/database"
	"league-sync/feature/league/models"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a league store schema check.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema compares every league model's columns against the database.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		missing, err := database.MissingColumns(db, table, stmt.Schema.DBNames)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Tables[table] = TableReport{MissingColumns: []string{}, Status: "error"}
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: []string{}, Status: "ok"}
		switch {
		case len(missing) == len(stmt.Schema.DBNames):
			tbl.Status = "missing"
			tbl.MissingColumns = missing
		case len(missing) > 0:
			tbl.Status = "error"
			tbl.MissingColumns = missing
		}
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
