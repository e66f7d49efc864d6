package bankbook

import (
	"slices"
	"testing"
)

func TestLabelSet_With(t *testing.T) {
	var s LabelSet
	s = s.With(Expenses, "Dining")
	s = s.With(Expenses, "Apparel")
	s = s.With(Expenses, "Dining") // no-op

	got := s.Names(Expenses)
	if !slices.Equal(got, []string{"Apparel", "Dining"}) {
		t.Errorf("Names() = %v, want sorted [Apparel Dining]", got)
	}
}

func TestLabelSet_Immutable(t *testing.T) {
	var base LabelSet
	base = base.With(Expenses, "Dining")

	derived := base.With(Expenses, "Apparel")
	if len(base.Names(Expenses)) != 1 {
		t.Errorf("With() mutated the receiver: %v", base.Names(Expenses))
	}
	derived = derived.Without("Dining")
	if !base.Has(Expenses, "Dining") {
		t.Errorf("Without() mutated an earlier value: %v", base)
	}
	_ = derived
}

func TestLabelSet_Without(t *testing.T) {
	var s LabelSet
	s = s.With(Bills, "Shared")
	s = s.With(Expenses, "Shared")
	s = s.With(Expenses, "Dining")

	s = s.Without("Shared")
	if s.HasAny("Shared") {
		t.Errorf("Without() left %q somewhere: %+v", "Shared", s)
	}
	if !s.Has(Expenses, "Dining") {
		t.Errorf("Without() dropped an unrelated label")
	}
}

func TestLabelSet_Renamed(t *testing.T) {
	var s LabelSet
	s = s.With(Bills, "Old")
	s = s.With(Expenses, "Old")
	s = s.With(Expenses, "Keep")

	s = s.Renamed("Old", "New")
	if s.HasAny("Old") {
		t.Errorf("Renamed() left the old name: %+v", s)
	}
	if !s.Has(Bills, "New") || !s.Has(Expenses, "New") {
		t.Errorf("Renamed() did not rename in every kind: %+v", s)
	}
	if !s.Has(Expenses, "Keep") {
		t.Errorf("Renamed() dropped an unrelated label")
	}
}

func TestLabelSet_IsZero(t *testing.T) {
	var s LabelSet
	if !s.IsZero() {
		t.Errorf("zero value IsZero() = false")
	}
	if s.With(Incomes, "Salary").IsZero() {
		t.Errorf("populated set IsZero() = true")
	}
}

func TestTransaction_Labels(t *testing.T) {
	tx := testTx("1111", "A1", "2023-01-09", "-1.00", "", "")
	tx.Auto = tx.Auto.With(Expenses, "Dining")
	tx.Manual = tx.Manual.With(Bills, "Rent")
	tx.Manual = tx.Manual.With(Expenses, "Dining") // overlap with auto

	got := tx.Labels()
	if !slices.Equal(got, []string{"Dining", "Rent"}) {
		t.Errorf("Labels() = %v, want deduplicated [Dining Rent]", got)
	}
	if !tx.HasLabel("Rent") || tx.HasLabel("Salary") {
		t.Errorf("HasLabel() answers wrong")
	}
}

func TestTransaction_DisplayName(t *testing.T) {
	tx := testTx("1111", "A1", "2023-01-09", "-1.00", "memo", "CoffeeCo")
	if tx.DisplayName() != "CoffeeCo" {
		t.Errorf("DisplayName() = %q, want the payee", tx.DisplayName())
	}
	tx.Alias = "Morning Coffee"
	if tx.DisplayName() != "Morning Coffee" {
		t.Errorf("DisplayName() = %q, want the alias", tx.DisplayName())
	}
}
