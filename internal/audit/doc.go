// Package audit keeps a history of setup runs.
//
// The history is stored as JSON Lines (one JSON object per line) at:
//
//	<user config dir>/csdp/history.jsonl
//
// Each entry records when the wizard ran, who ran it, a run ID, and which
// artifacts were written or failed. Entries never contain the database
// password or any other answer given to the wizard.
//
// # Usage
//
//	entry := audit.NewEntry("setup")
//	entry.Written = written
//	audit.Log(entry)
//
// # Failure Handling
//
// History logging is best-effort. If logging fails (permissions, disk full,
// etc.), the setup still succeeds. Readers skip malformed lines.
package audit
