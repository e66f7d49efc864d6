package bankbook

import (
	"errors"
	"testing"
)

func TestSetSplit(t *testing.T) {
	book := setupBook(t)

	if err := book.Ledger.SetSplit("1111", "A1", "Dining", dec("30.00")); err != nil {
		t.Fatalf("SetSplit() failed: %v", err)
	}
	tx, _ := book.Ledger.Get("1111", "A1")
	if !tx.Splits["Dining"].Equal(dec("30.00")) {
		t.Errorf("Splits[Dining] = %v, want 30.00", tx.Splits["Dining"])
	}

	// Setting again replaces the amount.
	if err := book.Ledger.SetSplit("1111", "A1", "Dining", dec("45.50")); err != nil {
		t.Fatalf("SetSplit(replace) failed: %v", err)
	}
	tx, _ = book.Ledger.Get("1111", "A1")
	if !tx.Splits["Dining"].Equal(dec("45.50")) {
		t.Errorf("Splits[Dining] = %v, want 45.50", tx.Splits["Dining"])
	}
}

func TestSetSplit_ZeroClears(t *testing.T) {
	book := setupBook(t)
	if err := book.Ledger.SetSplit("1111", "A1", "Dining", dec("30.00")); err != nil {
		t.Fatalf("SetSplit() failed: %v", err)
	}
	if err := book.Ledger.SetSplit("1111", "A1", "Dining", dec("0")); err != nil {
		t.Fatalf("SetSplit(0) failed: %v", err)
	}
	tx, _ := book.Ledger.Get("1111", "A1")
	if _, ok := tx.Splits["Dining"]; ok {
		t.Errorf("split entry survived a zero amount")
	}
}

func TestSetSplit_Errors(t *testing.T) {
	book := setupBook(t)

	if err := book.Ledger.SetSplit("1111", "nope", "Dining", dec("1")); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetSplit(unknown tx) error = %v, want ErrNotFound", err)
	}
	// A2 does not carry Dining: splits may only target labels the
	// transaction actually has.
	if err := book.Ledger.SetSplit("1111", "A2", "Dining", dec("1")); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("SetSplit(label not on tx) error = %v, want ErrUnknownLabel", err)
	}
}

func TestSetSplit_ManualLabelIsSplittable(t *testing.T) {
	book := setupBook(t)
	if err := book.Ledger.AddManualLabel("1111", "A2", Expenses, "Dining"); err != nil {
		t.Fatalf("AddManualLabel() failed: %v", err)
	}
	if err := book.Ledger.SetSplit("1111", "A2", "Dining", dec("5.00")); err != nil {
		t.Errorf("SetSplit(on manual label) failed: %v", err)
	}
}

func TestValidateSplits(t *testing.T) {
	book := setupBook(t)
	if err := book.Ledger.SetSplit("1111", "A1", "Dining", dec("30.00")); err != nil {
		t.Fatalf("SetSplit() failed: %v", err)
	}

	// Pull the label out from under the split, then validate.
	book.Ledger.RemoveLabel("Dining")
	if err := book.Ledger.ValidateSplits("1111", "A1"); err != nil {
		t.Fatalf("ValidateSplits() failed: %v", err)
	}
	tx, _ := book.Ledger.Get("1111", "A1")
	if len(tx.Splits) != 0 {
		t.Errorf("Splits = %v after validation, want none", tx.Splits)
	}

	if err := book.Ledger.ValidateSplits("1111", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ValidateSplits(unknown tx) error = %v, want ErrNotFound", err)
	}
}

func TestSplitOrAbs(t *testing.T) {
	book := setupBook(t)

	tx, _ := book.Ledger.Get("1111", "A1")
	if got := tx.SplitOrAbs("Dining"); !got.Equal(dec("87.21")) {
		t.Errorf("SplitOrAbs() without split = %v, want 87.21", got)
	}

	if err := book.Ledger.SetSplit("1111", "A1", "Dining", dec("30.00")); err != nil {
		t.Fatalf("SetSplit() failed: %v", err)
	}
	tx, _ = book.Ledger.Get("1111", "A1")
	if got := tx.SplitOrAbs("Dining"); !got.Equal(dec("30.00")) {
		t.Errorf("SplitOrAbs() with split = %v, want 30.00", got)
	}
}
