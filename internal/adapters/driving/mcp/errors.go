// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Otzar. It lets AI assistants look up lexical entries, search
// glosses and read concordance occurrences from the local dataset.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
