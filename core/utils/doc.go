// Package utils provides small conversion helpers shared across the importer.
//
// The external GraphQL API is loose about scalar types: ids arrive as strings
// or numbers depending on the field, and nullable numbers arrive as null.
// ToInt and ToString normalize those values without failing.
package utils
