// Package cli provides the interactive cashier terminal.
//
// It wires configuration, the SQLite database, application services and an
// interactive REPL. The REPL owns a single session.Session value and hands it
// to every command handler; nothing about the logged-in user or the cart is
// kept anywhere else.
//
// Key features:
//   - Register / Login / Logout
//   - Cashier: list products in stock, build a cart, checkout with a printed
//     receipt exported as TXT and PDF
//   - Catalog: add, edit, delete and reset products (with optional image)
//   - Report: daily, ISO weekly or monthly sales with CSV and PDF export
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
