// Package errors provides typed error values for the csdp setup tool.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: the operator's answers could not be used (ErrPathNotFound, ErrInputClosed, ErrAborted)
//   - Terminal errors: an interactive form cannot run here (ErrNotTerminal)
//   - Artifact errors: a configuration file could not be written (ErrArtifactWrite, ErrMainConfigWrite)
//   - Configuration errors: the wizard defaults file is unusable (ErrInvalidDefaults)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("writing %s: %w: %v", path, errors.ErrArtifactWrite, err)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Setup(ctx, opts)
//	if errors.Is(err, kerrors.ErrMainConfigWrite) {
//	    // Report and wait for the operator to exit
//	}
package errors
