// Package config provides configuration loading, merging, and validation
// for the account checker server and terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source are filled from built-in defaults before
// validation. The main entry points are [GetStructuredConfig] for the server
// and [GetClientConfig] for the terminal client.
package config
