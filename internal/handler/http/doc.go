// Package http implements the HTTP transport layer of the application.
//
// It serves the server-rendered lookup form, the JSON lookup API and the
// middleware shared by both. Cross-cutting concerns such as request tracing,
// access logging, request deadlines and response compression are handled in
// this package before requests are delegated to the service layer.
package http
