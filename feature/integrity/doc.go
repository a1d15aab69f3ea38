// Package integrity provides health checks for the importer's backing stores.
//
// # Checks Provided
//
//   - Schema: every league table has the columns its model declares.
//   - Storage: the snapshot bucket exists; archived payloads are counted per kind.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
