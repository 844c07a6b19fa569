// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings, plus a raw settings accessor for values
// whose format is owned by another package.
package config
