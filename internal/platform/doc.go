package platform

// Package platform contains OS integration: reading a directory into a
// folders/files listing and handing a file to the OS default application.
// The launcher command is fixed per target OS by build constraints.
