// Package logtail reads the tail of the application log for the log view.
//
// # Reading
//
// Read returns the last N lines of a file using a ring buffer, so memory stays
// O(maxLines) regardless of file size. A missing file yields nil, nil: the log
// view simply shows nothing until the first record is written.
//
//	lines, err := logtail.Read("~/.local/state/mensa/mensa.log", 400)
//
// # Parsing
//
// The application logs JSON records (one per line). ParseLine decodes a record
// into its timestamp, level, message and the remaining fields, which the UI
// renders as "key=value" pairs. Timestamps may be epoch seconds or ISO 8601
// strings. Anything that is not a JSON object is returned as a raw line rather
// than an error.
//
// # Design Rationale
//
//   - No file watching (the log view re-reads on refresh)
//   - No log rotation handling (reads the current file only)
//   - Pure functions with no global state
package logtail
