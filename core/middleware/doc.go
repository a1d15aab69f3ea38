// Package middleware groups the Fiber middleware used by the league API.
//
//   - auth: rejects requests whose X-API-Key header does not match
//     server.api_key. An empty key lets every request through.
//   - rayid: tags each request with a ray id (reusing an incoming X-Ray-ID)
//     so handler logs and the response can be correlated.
//
// The start command registers rayid first and auth after the swagger route,
// so the docs stay public while the league and integrity routes need the key.
package middleware
