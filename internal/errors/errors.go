package errors

import "errors"

// Input errors indicate the operator's answers could not be used.
var (
	// ErrPathNotFound indicates a path that must exist does not.
	ErrPathNotFound = errors.New("the path you entered does not exist")

	// ErrInputClosed indicates standard input ended while a prompt was waiting.
	ErrInputClosed = errors.New("input closed before the setup finished")

	// ErrAborted indicates the operator cancelled a prompt.
	ErrAborted = errors.New("setup aborted by operator")

	// ErrNotTerminal indicates an interactive form was requested without a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// Artifact errors indicate a configuration file could not be written.
var (
	// ErrArtifactWrite indicates a settings or environment file could not be written.
	// The wizard reports it and continues.
	ErrArtifactWrite = errors.New("could not write artifact")

	// ErrMainConfigWrite indicates config.ini could not be written.
	// The wizard reports it and stops.
	ErrMainConfigWrite = errors.New("could not write main application config")

	// ErrUnsupportedINIValue indicates a value config.ini readers would not get back verbatim.
	ErrUnsupportedINIValue = errors.New("the value cannot be written to config.ini")
)

// Configuration errors indicate issues with the wizard's own settings.
var (
	// ErrInvalidDefaults indicates the defaults file is malformed.
	ErrInvalidDefaults = errors.New("wizard defaults file is invalid")
)
