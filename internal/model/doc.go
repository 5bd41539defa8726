package model

// Package model defines the value types passed between the platform layer,
// the handler bridge and the UI: directory listings, file groups and file
// type classification. Values are request-scoped and never mutated after the
// call that produced them returns.
