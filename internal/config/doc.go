// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables (prefixed names win over the legacy unprefixed ones)
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig]. The returned config is built
// once at startup and treated as read-only afterwards.
package config
