// Package expenses provides the record store of a personal expense ledger.
// It is designed to be local-first and human readable: the whole ledger is a
// single comma-separated file that can be opened in any spreadsheet.
//
// The core functionalities include:
//   - Expense Table: an ordered list of expenses (name, amount, category)
//     where the position of a record is its identifier.
//   - Exact Amounts: amounts are decimals, never floats, so that sums and
//     round trips through the file are exact.
//   - Data Persistence: decoding and encoding the table to and from the
//     `Nome,Valor,Categoria` CSV format, with whole-file atomic overwrites.
//
// Positional identifiers are not persisted. They are recomputed each time the
// file is loaded, and deleting a record shifts every following record down by
// one. An ID printed by a previous command is only valid as long as no record
// before it has been deleted.
//
// This package serves as the foundational logic for the `spend` command-line
// tool.
package expenses
