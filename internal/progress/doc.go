// Package progress models the entries of a PROGRESS.toml file.
//
// The file holds a top-level `events` array of tables. Each table becomes an
// Event with a timestamp, a kind, a one-line title and the complete field
// mapping in the order the fields were written:
//
//	[[events]]
//	ts = "2024-01-02T10:00:00"
//	type = "milestone"
//	task = "Ship the parser"
//	details = ["tokenizer", "AST"]
//
// Field values are held as a Value, a tagged variant of scalar, sequence
// and mapping, so consumers switch on Value.Kind rather than inspecting
// dynamic types. Decoding uses the go-toml/v2 unstable parser because the
// regular decoder loses key order when targeting maps.
package progress
