// Package file provides the TOML-based configuration store.
// Configuration lives in ~/.otzar/config.toml and holds the dataset
// file locations, the per-corpus source paths and the build options.
package file
