// Package server holds the HTTP server configuration for the league API.
//
// The start command serves a read-only view of imported divisions, teams,
// matches and memberships. Config carries the listen address, the optional
// API key and the request read timeout.
package server
