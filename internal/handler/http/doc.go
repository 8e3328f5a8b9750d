// Package http implements the REST surface of the style profile service.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging,
// CORS, response compression and extraction throttling are handled in this
// package before requests are delegated to the service layer.
package http
