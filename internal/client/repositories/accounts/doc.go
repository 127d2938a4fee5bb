// Package accounts persists the account store as a flat CSV file.
//
// # File format
//
// One record per line, no header, exactly three fields:
//
//	email,password_hash,question:answer
//
// Fields are quoted only when they contain a comma, a quote or a line break.
// Records end with CRLF. Rows with any other field count are dropped on read.
//
// # Lifecycle
//
// The whole file is read by Load and rewritten by Save; there is no append,
// no locking and no protection against a crash in the middle of a save. A
// single process is expected to own the file.
//
// Key Types
//
//   - type Repository: interface used by the auth service
//   - type FileRepository: CSV implementation over a file path
package accounts
