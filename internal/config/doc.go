// Package config loads Quill's configuration file.
//
// # Overview
//
// Quill reads a small TOML file that tells it where the blog platform's API
// lives. The file is optional: when it is missing the loader returns a config
// pointing at the default local API address, so a fresh install works against
// a locally running backend with no setup.
//
// # File Location
//
// The default path is ~/.config/quill/config.toml. A different path can be
// supplied on the command line via the -config flag, which is passed through
// to Load unchanged. Tilde prefixes are expanded against the current user's
// home directory and the result is made absolute.
//
// # Format
//
//	api_base = "127.0.0.1:8080"
//
// api_base accepts either a bare host:port or a full URL; scheme defaulting
// is handled by the API client, not here. Values are whitespace-trimmed and
// empty values fall back to the default.
//
// # Error Handling
//
// A missing file is not an error. An unreadable file or invalid TOML is,
// because silently ignoring a config the user wrote tends to send requests
// to the wrong host.
package config
