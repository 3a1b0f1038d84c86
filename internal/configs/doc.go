// Package configs resolves where csdp reads and writes its files and which
// values the wizard offers by default.
//
// # Settings
//
// SetupSettings is initialized at startup from the operator's environment:
//   - HomeDir: home directory holding ~/.csdm-dev and ~/.csdm
//   - ConfigDir: csdp's own directory under the user config dir
//   - WorkDir: the working directory holding csdm-fork/ and config.ini
//
// Artifact paths are derived from these three directories, so tests can
// point the whole tool at temporary directories by replacing SetupSettings.
//
// # Defaults
//
// The database endpoint, playback settings and OBS defaults are built in.
// An optional <ConfigDir>/config.toml may override any of them:
//
//	[database]
//	host = "db.example.com"
//	port = 5432
//
//	[obs]
//	port = "4456"
//
// Unknown keys make the file invalid rather than being silently ignored.
package configs
