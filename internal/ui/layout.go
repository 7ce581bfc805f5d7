package ui

import "time"

// Log display limits.
const (
	// LogViewLines is the number of log lines read for the log view.
	LogViewLines = 400
)

// Timing constants.
const (
	// LogRefreshInterval is how often the open log view re-reads the file.
	LogRefreshInterval = 2 * time.Second

	// RequestTimeout bounds one meal list or detail request.
	RequestTimeout = 15 * time.Second
)

// chromeHeight is the number of lines taken by the header and command bar.
const chromeHeight = 2
