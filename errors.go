package expenses

import "errors"

var (
	// ErrRecordNotFound is returned when a positional ID does not address a row
	// of the table. Operations returning it never modify the ledger file.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStorageCorrupt is returned when the ledger file exists but is not a
	// three-column Nome,Valor,Categoria table.
	ErrStorageCorrupt = errors.New("storage corrupt")

	// ErrStorageUnreadable is returned when the ledger file exists but cannot
	// be opened.
	ErrStorageUnreadable = errors.New("storage unreadable")

	// ErrStorageUnwritable is returned when the ledger file cannot be written.
	ErrStorageUnwritable = errors.New("storage unwritable")
)
