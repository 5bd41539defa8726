package platform

import "errors"

// Sentinel errors for directory listing and file opening. Callers match them
// with errors.Is; the wrapped message carries the path or the OS error text.
var (
	ErrPathNotFound  = errors.New("path does not exist")
	ErrNotADirectory = errors.New("path is not a directory")
	ErrReadFailed    = errors.New("failed to read directory")
	ErrOpenFailed    = errors.New("failed to open file")
)
