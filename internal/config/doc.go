// Package config provides configuration loading, merging, and validation
// facilities for the style-keeper service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The encryption key is carried as an opaque string here; its validation is
// owned by the crypto package and happens when the codec is constructed.
package config
