// Package cli provides the interactive tourist guide command-line client.
//
// It wires the local profile store, the identity and favorites services,
// and the attraction catalog into a REPL. Typical flow: the catalog starts
// loading in the background, a prior session (if any) is picked up from the
// profile, and the user browses, searches, and manages favorites.
//
// Key features:
//   - Browse and search the attraction directory, with a text map view
//   - Sign in / register / sign out (simulated local accounts)
//   - Per-identity favorites, kept in sync across concurrent processes
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
