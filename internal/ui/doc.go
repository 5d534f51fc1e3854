// Package ui provides terminal output components for mqttdash's
// non-interactive commands.
//
// The dashboard itself lives in the dashboard package. This package covers
// what the CLI prints around it: the branded header, styled status lines,
// series tables and sparklines.
//
// # Color Scheme
//
// Colors follow the dashboard's neon palette:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (amber)  - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (purple) - Accents
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
package ui
