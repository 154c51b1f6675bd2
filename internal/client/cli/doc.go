// Package cli provides the interactive authshell client.
//
// It wires configuration, the local session store, the HTTP client and the
// auth services, then runs a REPL. Typical flow: register or log in through
// a validated form, land on the dashboard that shows the stored token
// masked, and open the admin view, which the backend must authorize first.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
