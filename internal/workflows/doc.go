// Package workflows implements the csdp commands independently of the CLI.
//
// The cmd/ package parses flags, chooses a Prompter, renders progress and
// calls a workflow. Workflows load settings, ask questions through the
// Prompter, write artifacts and record history.
//
// # Available Workflows
//
//   - Setup: the interactive setup wizard
//   - Doctor: health checks over the files Setup writes
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.Setup(ctx, opts)
//	if errors.Is(err, kerrors.ErrMainConfigWrite) {
//	    // Report the failure and wait for the operator to exit
//	}
//
// A failed settings or .env write is not an error; it is reported through
// the Reporter and listed in SetupResult.Failed.
package workflows
