package bankbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// File-level persistence. An absent file is never fatal: loaders fall back
// to an empty default, because a first run has nothing on disk yet. Corrupt
// or unreadable content is different: the empty default is still returned so
// the caller can keep going, but alongside an ErrPersistence-wrapped error
// to surface as a warning.

// LoadLedger reads the whole-store snapshot from path.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("ledger snapshot %q does not exist, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), fmt.Errorf("%w: could not open ledger snapshot %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return NewLedger(), fmt.Errorf("%w: could not decode ledger snapshot %q: %v", ErrPersistence, path, err)
	}
	return ledger, nil
}

// SaveLedger writes the whole-store snapshot to path, creating parent
// directories as needed.
func SaveLedger(path string, l *Ledger) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("%w: could not write ledger snapshot %q: %v", ErrPersistence, path, err)
	}
	return nil
}

// LoadCatalog reads the label catalog from path. An absent file initializes
// an empty catalog and writes it out, so the file exists from then on.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		catalog := NewCatalog()
		if err := SaveCatalog(path, catalog); err != nil {
			return catalog, err
		}
		return catalog, nil
	}
	if err != nil {
		return NewCatalog(), fmt.Errorf("%w: could not open catalog %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()

	catalog, err := DecodeCatalog(f)
	if err != nil {
		return NewCatalog(), fmt.Errorf("%w: could not decode catalog %q: %v", ErrPersistence, path, err)
	}
	return catalog, nil
}

// SaveCatalog writes the label catalog to path.
func SaveCatalog(path string, c *Catalog) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeCatalog(f, c); err != nil {
		return fmt.Errorf("%w: could not write catalog %q: %v", ErrPersistence, path, err)
	}
	return nil
}

// LoadBudgets reads the budget definitions from path, empty when absent.
func LoadBudgets(path string) (Budgets, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Budgets), nil
	}
	if err != nil {
		return make(Budgets), fmt.Errorf("%w: could not open budgets %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()

	budgets, err := DecodeBudgets(f)
	if err != nil {
		return make(Budgets), fmt.Errorf("%w: could not decode budgets %q: %v", ErrPersistence, path, err)
	}
	return budgets, nil
}

// SaveBudgets writes the budget definitions to path.
func SaveBudgets(path string, b Budgets) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeBudgets(f, b); err != nil {
		return fmt.Errorf("%w: could not write budgets %q: %v", ErrPersistence, path, err)
	}
	return nil
}

// LoadBook loads the three data files of a Book from a data directory.
// Loading keeps going on corrupt files (empty defaults are substituted); the
// joined error carries every warning for the caller to report.
func LoadBook(dir string) (*Book, error) {
	ledger, lerr := LoadLedger(filepath.Join(dir, LedgerFile))
	catalog, cerr := LoadCatalog(filepath.Join(dir, CatalogFile))
	budgets, berr := LoadBudgets(filepath.Join(dir, BudgetsFile))
	return &Book{Ledger: ledger, Catalog: catalog, Budgets: budgets}, errors.Join(lerr, cerr, berr)
}

// SaveBook writes the three data files of a Book to a data directory.
func SaveBook(dir string, b *Book) error {
	if err := SaveLedger(filepath.Join(dir, LedgerFile), b.Ledger); err != nil {
		return err
	}
	if err := SaveCatalog(filepath.Join(dir, CatalogFile), b.Catalog); err != nil {
		return err
	}
	return SaveBudgets(filepath.Join(dir, BudgetsFile), b.Budgets)
}

// Default file names inside a data directory.
const (
	LedgerFile  = "ledger.jsonl"
	CatalogFile = "labels.json"
	BudgetsFile = "budgets.json"
)

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: could not create directory for %q: %v", ErrPersistence, path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create %q: %v", ErrPersistence, path, err)
	}
	return f, nil
}
