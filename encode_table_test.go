package expenses

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeTable(t *testing.T) {
	// as written by the historical tool: floats without trailing zeros.
	input := `Nome,Valor,Categoria
Coffee,4.5,Food
Bus,2.0,Transport
"Dinner, with friends",-10.25,
`
	table, err := DecodeTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	want := NewTable(
		coffee(),
		bus(),
		Expense{Name: "Dinner, with friends", Amount: A(-10.25), Category: ""},
	)
	if !table.Equal(want) {
		t.Errorf("DecodeTable() = %v, want %v", table.expenses, want.expenses)
	}
}

func TestDecodeTableEmpty(t *testing.T) {
	for _, input := range []string{"", "Nome,Valor,Categoria\n", "\xEF\xBB\xBFNome,Valor,Categoria\n"} {
		table, err := DecodeTable(strings.NewReader(input))
		if err != nil {
			t.Errorf("DecodeTable(%q) error = %v", input, err)
			continue
		}
		if !table.IsEmpty() {
			t.Errorf("DecodeTable(%q) has %d rows, want 0", input, table.Len())
		}
	}
}

func TestDecodeTableCorrupt(t *testing.T) {
	tests := map[string]string{
		"wrong header":   "Name,Amount,Category\nCoffee,4.5,Food\n",
		"missing column": "Nome,Valor\nCoffee,4.5\n",
		"extra column":   "Nome,Valor,Categoria\nCoffee,4.5,Food,0\n",
		"bad amount":     "Nome,Valor,Categoria\nCoffee,four,Food\n",
		"empty amount":   "Nome,Valor,Categoria\nCoffee,,Food\n",
		"bad quoting":    "Nome,Valor,Categoria\n\"Coffee,4.5,Food\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTable(strings.NewReader(input))
			if !errors.Is(err, ErrStorageCorrupt) {
				t.Errorf("DecodeTable() error = %v, want ErrStorageCorrupt", err)
			}
		})
	}
}

func TestEncodeTable(t *testing.T) {
	table := NewTable(
		coffee(),
		Expense{Name: "Dinner, with \"friends\"", Amount: A(-10.25), Category: "Food"},
	)
	var b strings.Builder
	if err := EncodeTable(&b, table); err != nil {
		t.Fatalf("EncodeTable() error = %v", err)
	}
	want := `Nome,Valor,Categoria
Coffee,4.5,Food
"Dinner, with ""friends""",-10.25,Food
`
	if got := b.String(); got != want {
		t.Errorf("EncodeTable() =\n%s\nwant\n%s", got, want)
	}
}

// TestEncodeDecodeTable checks that decoding an encoded table gives back the
// same table.
func TestEncodeDecodeTable(t *testing.T) {
	tables := []*Table{
		NewTable(),
		NewTable(coffee(), bus(), rent()),
		NewTable(coffee(), coffee()),
		NewTable(Expense{Name: "café ☕", Amount: A(0.125), Category: "línea\nnova"}),
	}
	for _, table := range tables {
		var b strings.Builder
		if err := EncodeTable(&b, table); err != nil {
			t.Fatalf("EncodeTable() error = %v", err)
		}
		got, err := DecodeTable(strings.NewReader(b.String()))
		if err != nil {
			t.Fatalf("DecodeTable() error = %v on\n%s", err, b.String())
		}
		if !got.Equal(table) {
			t.Errorf("encode/decode sequence is not stable got %v want %v", got.expenses, table.expenses)
		}
	}
}
