// Package logger provides leveled console logging for csdp commands.
//
// Verbosity is controlled by two persistent flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages as well
//
// Warnings and errors are always written to stderr.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Writing %s", path)
//
// Commands create a logger in their PersistentPreRun and hand it to the
// workflows they call. Secrets entered by the operator must never be passed
// to a Logger method.
package logger
