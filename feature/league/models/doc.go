// Package models defines the league store records.
//
// Each model is both a gorm table and a reconcile.Record, so the import
// engine can look it up and write it without knowing about gorm. JSON names
// are camelCase to match the documents the league app reads.
package models
