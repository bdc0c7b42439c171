// Package http implements the JSON REST API of the finance tracker.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as session resolution, request tracing, access logging,
// CORS and compression are handled in this package before requests are
// delegated to the service layer. Every error response has the body
// {"message": "..."}.
package http
