// Package cli provides the interactive badgekeeper command-line client.
//
// It wires configuration, the persistent session store, the badge API client
// and the page factory, then runs a REPL that plays the part of a browser:
// the Router records where the pages navigate, and every navigation mounts
// the page living at the new path.
//
// Key features:
//   - Signup / Login / Logout
//   - Create a badge for the signed-in user
//   - Show a badge by user id, or the user's own badge
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router and runREPL for details.
package cli
