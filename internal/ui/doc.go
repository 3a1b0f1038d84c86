// Package ui provides semantic text formatting for csdp output.
//
// Formatters render content according to terminal capabilities. When
// colors are available, content is colorized. When NO_COLOR is set or the
// terminal doesn't support colors, text decorations are used instead.
//
//	ui.Code.Sprint("python setup_youtube_auth.py") // Commands
//	ui.Path.Sprint("~/.csdm/settings.json")        // File paths
//	ui.Success.Sprint("[SUCCESS]")                 // Success markers
//	ui.Error.Sprint("[ERROR]")                     // Error markers
//	ui.Heading.Sprint("Step 1")                    // Section headings
//
// Banner draws the ASCII-art welcome shown at the start of the wizard.
package ui
