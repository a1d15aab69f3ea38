// Package apa is a client for the pool league's GraphQL API.
//
// Every call is a single-operation batch POST. Authenticate exchanges a
// refresh token for an access token; FetchRoster and FetchSchedule then
// return the division payload decoded into the types in this package.
//
// The API is inconsistent about scalars (ids and numbers arrive as strings,
// numbers or null), so ID and Number decode all three. Failures surface as
// *APIError, which matches ErrAPI and, for 401/403, ErrUnauthorized.
//
//	client := apa.NewClient(cfg.APA, log)
//	if _, err := client.Authenticate(ctx, cfg.APA.RefreshToken); err != nil {
//	    return err
//	}
//	division, err := client.FetchRoster(ctx, 418320)
package apa
