package expenses

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// this file handles the ledger file format.
//
// The format is a UTF-8 CSV file with a header row and one row per expense.
// Columns are fixed, in this order: name, amount, category. There is no ID
// column, IDs are the row positions.

// Header is the header row of the ledger file.
var Header = []string{"Nome", "Valor", "Categoria"}

const (
	colName = iota
	colAmount
	colCategory
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeTable decodes a ledger file from r.
//
// An empty input decodes into an empty table. Every other shape mismatch
// returns an error wrapping ErrStorageCorrupt.
func DecodeTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	// Spreadsheets like to add a BOM when saving as UTF-8 CSV.
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %w", ErrStorageCorrupt, err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: header is %q, want %q", ErrStorageCorrupt, header, Header)
	}

	table := NewTable()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageCorrupt, err)
		}
		amount, err := ParseAmount(record[colAmount])
		if err != nil {
			line, _ := reader.FieldPos(colAmount)
			return nil, fmt.Errorf("%w: line %d: %w", ErrStorageCorrupt, line, err)
		}
		table.Append(Expense{
			Name:     record[colName],
			Amount:   amount,
			Category: record[colCategory],
		})
	}
	return table, nil
}

// EncodeTable writes the header and every expense of t to w, in table order.
func EncodeTable(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for id, e := range t.All() {
		record := make([]string, len(Header))
		record[colName] = e.Name
		record[colAmount] = e.Amount.Exact()
		record[colCategory] = e.Category
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write expense %d: %w", id, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
