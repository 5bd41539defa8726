package bridge

// Package bridge exposes the application's operations as named handlers
// invoked with JSON arguments, the way a UI shell calls into its backend.
// Failures cross the boundary as plain message strings.
