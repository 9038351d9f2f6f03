// Package utils provides small helpers shared by the transport layers:
// JSON response writing and the preconfigured outbound HTTP client.
package utils
