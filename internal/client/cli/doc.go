// Package cli provides the interactive AutoPort command-line client.
//
// It wires configuration, the local sqlite cache, the REST API services and
// an interactive REPL that keeps working against the cache when the backend
// is unreachable. Typical flow: restore the cached session, then execute
// user commands until "exit".
//
// Key features:
//   - Register / Login / Logout with a locally cached session
//   - Inventory: list, find, show, add, edit, delete, CSV export
//   - Dashboard statistics and the recent-activity feed
//   - Export shipments: list, create, update status, delete
//   - Account settings: profile, password, preferences, image upload
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
