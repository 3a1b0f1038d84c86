// Package artifacts renders and writes the configuration files produced by
// the setup wizard.
//
// Three formats are produced:
//
//   - CSDM settings (JSON), written identically to the developer-mode and
//     production-mode locations under the operator's home directory
//   - the CSDM fork's .env file, a single VITE_DATABASE_URL line
//   - the main application's config.ini
//
// Every file is described by an Artifact and written with Write, which
// never panics and reports the outcome as a Result so callers can report a
// failure and carry on with the next file.
//
// The database password is stored in cleartext in all three CSDM files.
// The consuming applications read it that way.
package artifacts
