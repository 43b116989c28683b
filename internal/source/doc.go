// Package source reads the progress file from disk.
//
// # Overview
//
// Read returns the complete file contents together with the metadata the
// staleness tracker needs: the modification time and a content marker made
// of the byte length and an xxhash64 digest. The tracker compares markers
// between reloads, so a file that is rewritten with identical bytes is not
// reported as new data.
//
// # Errors
//
//   - A missing file returns an error wrapping ErrNotFound.
//   - Any other open, stat or read failure is wrapped with context
//     ("open source: ...", "read source: ...").
//
// Read never retries and holds no state between calls; the file is opened,
// read in one pass and closed.
//
// # Usage Example
//
//	snap, err := source.Read("PROGRESS.toml")
//	switch {
//	case errors.Is(err, source.ErrNotFound):
//		// show "not-found"
//	case err != nil:
//		// show "load-error"
//	default:
//		events, err := progress.Load(snap.Data)
//		_ = events
//		_ = err
//	}
package source
