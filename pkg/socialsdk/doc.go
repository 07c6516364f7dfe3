// Package socialsdk holds the request/response shapes and API error types of
// the social service HTTP API, plus a thin client for other services that
// need to call it. The server handlers encode these exact types, so the wire
// contract lives in one place.
package socialsdk
