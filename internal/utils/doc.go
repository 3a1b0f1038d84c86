// Package utils provides shared helpers for the csdp tool.
//
// # Filesystem Utilities
//
//   - PathExists: reports whether a path names an existing entry
//   - EnsureParentDir: creates the missing parent directories of a path
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//
// # Terminal Utilities
//
//   - IsTerminal: checks if a reader or writer is a terminal
//   - ReadPassword: reads a line without echo from a terminal
//   - ClearScreen: clears a terminal writer
package utils
