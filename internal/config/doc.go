// Package config provides configuration loading, merging, and validation
// facilities for the securekv command-line tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (a later source only fills fields the earlier ones left unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The library packages take
// their settings as plain arguments; this package only serves the tool's
// bootstrap.
package config
