package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// newFileMode is the permission of a ledger file created by Save.
const newFileMode fs.FileMode = 0644

// DefaultFile is the ledger file used when none is configured. It is relative
// to the working directory.
const DefaultFile = "expenses.csv"

// Store persists a Table in a single ledger file.
//
// Every operation is a full load-mutate-save cycle against the file: nothing
// is cached between calls. There is no locking, two processes working on the
// same file concurrently can lose updates.
type Store struct {
	path string
}

// NewStore creates a store for the ledger file at path. The file is not
// accessed until an operation needs it.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// Load reads the whole table from the ledger file.
//
// A missing file is an empty table.
func (s *Store) Load() (*Table, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("load-expenses file=%q missing=true", s.path)
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q for reading: %w", ErrStorageUnreadable, s.path, err)
	}
	defer f.Close()

	t, err := DecodeTable(f)
	if err != nil {
		return nil, fmt.Errorf("parse error %s: %w", s.path, err)
	}
	log.Printf("load-expenses file=%q rows=%d", s.path, t.Len())
	return t, nil
}

// Save overwrites the ledger file with t.
//
// The table is first written to a temporary file in the same folder and then
// renamed over the ledger file, so that a failure never leaves a truncated
// ledger behind. An existing ledger keeps its permissions, a new one is
// created 0644.
func (s *Store) Save(t *Table) (err error) {
	mode := newFileMode
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: cannot create temporary file in %q: %w", ErrStorageUnwritable, dir, err)
	}
	// On any failure the temporary file is discarded.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeTable(tmp, t); err != nil {
		return fmt.Errorf("%w: write error on %q: %w", ErrStorageUnwritable, tmp.Name(), err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: cannot set permissions on %q: %w", ErrStorageUnwritable, tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: cannot sync %q: %w", ErrStorageUnwritable, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cannot close %q: %w", ErrStorageUnwritable, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: cannot replace %q: %w", ErrStorageUnwritable, s.path, err)
	}
	log.Printf("save-expenses file=%q rows=%d", s.path, t.Len())
	return nil
}

// Append adds e after the last expense of the ledger and returns its ID.
func (s *Store) Append(e Expense) (int, error) {
	t, err := s.Load()
	if err != nil {
		return 0, err
	}
	id := t.Append(e)
	if err := s.Save(t); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateAmount replaces the amount of the expense at id and returns the
// updated expense.
//
// If id is not a row of the ledger, it returns an error wrapping
// ErrRecordNotFound and the file is left untouched.
func (s *Store) UpdateAmount(id int, amount Amount) (Expense, error) {
	t, err := s.Load()
	if err != nil {
		return Expense{}, err
	}
	e, err := t.SetAmount(id, amount)
	if err != nil {
		return Expense{}, err
	}
	if err := s.Save(t); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Delete removes the expense at id and returns it. Following expenses get
// their ID decremented by one.
//
// If id is not a row of the ledger, it returns an error wrapping
// ErrRecordNotFound and the file is left untouched.
func (s *Store) Delete(id int) (Expense, error) {
	t, err := s.Load()
	if err != nil {
		return Expense{}, err
	}
	e, err := t.Delete(id)
	if err != nil {
		return Expense{}, err
	}
	if err := s.Save(t); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Summary returns the sum of all amounts in the ledger.
func (s *Store) Summary() (Amount, error) {
	t, err := s.Load()
	if err != nil {
		return Amount{}, err
	}
	return t.Sum(), nil
}

// List returns the whole ledger.
func (s *Store) List() (*Table, error) { return s.Load() }

// Format rewrites the ledger file in its canonical form.
func (s *Store) Format() error {
	t, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(t)
}
