// Package api contains the HTTP handlers for the triage API. Handlers decode
// and validate incoming requests, delegate to the service layer, and map
// domain and store errors onto HTTP status codes. Response and error shapes
// live in the shared subpackage; authentication lives in middleware.
package api
