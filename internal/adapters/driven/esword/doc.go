// Package esword imports dictionary entries from e-Sword module files.
//
// e-Sword modules are SQLite databases. Dictionary modules from v9-10
// (.dctx) store definitions as RTF; v11+ modules (.dcti) store HTML.
// The reader detects the format from the file extension, strips the
// markup down to plain text and assigns sequential MH identifiers in
// the order the module returns its rows.
package esword
