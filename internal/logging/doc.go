// Package logging builds the application's zap logger.
//
// Records are JSON, one per line, with ISO 8601 timestamps, appended to the
// configured log file. The log view (see package logtail) reads the same
// file back.
package logging
