// Package api handles the JSON API surface: the per-endpoint response
// payloads, the responder that applies truncation before wrapping them in
// envelopes, and the collections endpoints.
package api
