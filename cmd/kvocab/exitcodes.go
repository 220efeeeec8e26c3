package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, history disabled)
	ExitDataError   = 3 // Data error (unreadable or invalid deck)
	ExitNotFound    = 4 // lookup: no record matches the term
)
