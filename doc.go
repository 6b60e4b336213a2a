// Package pos provides the core types and operations of a small
// restaurant point-of-sale. It is designed to be local-first and
// offline: all state lives in a handful of human-readable JSON
// documents on disk, there is no server and no account.
//
// The core functionalities include:
//   - Menu Catalog: an ordered list of sellable items, seeded with a
//     default menu on first run, with add/update/remove management.
//   - Cart & Billing: the in-progress selection of items and
//     quantities for the current session, durably mirrored to disk
//     after every change so a restart restores it exactly.
//   - Transaction Ledger: the append-only record of completed sales.
//     A sale is a value snapshot of the cart at payment time; editing
//     the menu later never alters history.
//   - Payment Payload: a deterministic UPI payment URI builder, fed
//     to a QR collaborator so customers can scan and pay.
//   - Monthly Report: ledger entries filtered to one calendar month,
//     plus their total.
//
// This package serves as the foundational logic for the `tamilpos`
// command-line tool; the CLI only renders what this package computes.
package pos
