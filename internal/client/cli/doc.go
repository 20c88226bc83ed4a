// Package cli provides the interactive Sensitivv terminal client.
//
// On start the App restores any cached session (validating it against the
// server), starts a background connectivity watcher and enters a REPL.
//
// Commands:
//   - register / login / logout
//   - status, profile
//   - foods [category] [reaction]
//   - lang [code]
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
