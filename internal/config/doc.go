// Package config provides configuration loading, merging, and validation
// facilities for the go-note-keeper binaries.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables, all prefixed with [EnvPrefix]
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]; binaries then call
// [StructuredConfig.ValidateClient] or [StructuredConfig.ValidateServer]
// for their own requirements.
package config
