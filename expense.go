package expenses

import (
	"fmt"
	"iter"
	"slices"
)

// Expense is a single entry of the ledger.
type Expense struct {
	Name     string
	Amount   Amount
	Category string
}

// Equal reports whether e and f hold the same values.
func (e Expense) Equal(f Expense) bool {
	return e.Name == f.Name && e.Category == f.Category && e.Amount.Equal(f.Amount)
}

func (e Expense) String() string {
	return fmt.Sprintf("%s (%s) %s", e.Name, e.Category, e.Amount)
}

// Table is the ordered list of all expenses.
//
// The position of an expense in the table is its ID. IDs are zero-based,
// are not persisted, and shift down by one for every record after a deleted
// one.
type Table struct {
	expenses []Expense
}

// NewTable creates a table holding expenses, in that order.
func NewTable(expenses ...Expense) *Table {
	return &Table{expenses: slices.Clone(expenses)}
}

// Len returns the number of expenses in the table.
func (t *Table) Len() int { return len(t.expenses) }

// IsEmpty returns true if the table has no expenses.
func (t *Table) IsEmpty() bool { return len(t.expenses) == 0 }

// Has returns true if id addresses an existing row.
func (t *Table) Has(id int) bool { return id >= 0 && id < len(t.expenses) }

// At returns the expense at position id.
func (t *Table) At(id int) (Expense, bool) {
	if !t.Has(id) {
		return Expense{}, false
	}
	return t.expenses[id], true
}

// All returns an iterator over each expense and its ID, in table order.
func (t *Table) All() iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range t.expenses {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Append appends expenses after the last row and returns the ID of the last
// one appended.
func (t *Table) Append(es ...Expense) int {
	t.expenses = append(t.expenses, es...)
	return len(t.expenses) - 1
}

// SetAmount replaces the amount of the expense at id, leaving its name and
// category untouched. It returns the updated expense.
func (t *Table) SetAmount(id int, amount Amount) (Expense, error) {
	if !t.Has(id) {
		return Expense{}, t.notFound(id)
	}
	t.expenses[id].Amount = amount
	return t.expenses[id], nil
}

// Delete removes the expense at id. All following expenses move down by one
// position. It returns the removed expense.
func (t *Table) Delete(id int) (Expense, error) {
	if !t.Has(id) {
		return Expense{}, t.notFound(id)
	}
	e := t.expenses[id]
	t.expenses = slices.Delete(t.expenses, id, id+1)
	return e, nil
}

// Sum returns the total amount of all expenses. It is zero for an empty table.
func (t *Table) Sum() Amount {
	var total Amount
	for _, e := range t.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Equal reports whether both tables hold equal expenses in the same order.
func (t *Table) Equal(u *Table) bool {
	return slices.EqualFunc(t.expenses, u.expenses, Expense.Equal)
}

func (t *Table) notFound(id int) error {
	return fmt.Errorf("%w: id %d is not in [0, %d)", ErrRecordNotFound, id, len(t.expenses))
}
