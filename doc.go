// Package lotbook implements the persistence core of a small car-loan
// management system. It emulates a relational store without a database
// server: six record types are held in memory, serialized to delimited
// text files under a hidden directory in the user's home, and queried
// through a single repository facade.
//
// The core functionalities include:
//   - Entity Stores: one in-memory list plus backing file per record
//     type (cars, customers, loans, payments, amortization rows),
//     loaded once at startup and rewritten wholesale on every mutation.
//   - Sequence Allocation: monotonically increasing identifiers per
//     entity type, persisted to a counter file and safe under
//     concurrent allocation.
//   - Referential Queries: cross-entity checks such as car availability
//     against active loans, loan/customer/car joins, and per-loan
//     payment and amortization aggregates.
//   - Bootstrapping: default settings and sample records seeded the
//     first time the store is opened on an empty data directory.
//
// Monetary values are kept as exact decimals end to end; they are never
// routed through a binary floating type. Data files are human-readable
// and line-oriented: a malformed line is skipped on load, never fatal.
//
// This package serves as the single data-access surface for the `lbk`
// command-line tool.
package lotbook
