// Package config provides configuration loading, merging, and validation
// facilities for the go-memories client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags (registered on the cobra root via [BindFlags])
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
