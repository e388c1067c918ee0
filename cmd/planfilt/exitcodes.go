package main

// Exit codes of the planfilt CLI.
const (
	ExitSuccess   = 0 // success
	ExitError     = 1 // general error (invalid arguments, write failure)
	ExitDataError = 2 // malformed input (unreadable, non-square, bad index)
)
