// Package cache keeps the last good OpenMensa responses on disk.
//
// The client writes every successful response body here, keyed by request
// path, and reads it back when the network or the API fails. Menus change at
// most daily, so a stale menu beats an error screen. The store is a single
// SQLite file (pure Go driver, no cgo).
package cache
