package bankbook

import (
	"errors"
	"testing"
	"time"
)

func TestLedger_GetAndUpsert(t *testing.T) {
	ledger := NewLedger()
	ledger.Upsert(testTx("1111", "A1", "2023-01-09", "-87.21", "COFFEE SHOP", "CoffeeCo"))

	tx, err := ledger.Get("1111", "A1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if tx.Memo != "COFFEE SHOP" || tx.Date != jan9 {
		t.Errorf("Get() = %+v, want the stored transaction", tx)
	}

	if _, err := ledger.Get("1111", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	// Upsert with the same key replaces, not duplicates.
	tx.Memo = "COFFEE SHOP #2"
	ledger.Upsert(tx)
	if ledger.Len() != 1 {
		t.Fatalf("Len() = %d after re-upsert, want 1", ledger.Len())
	}
	got, _ := ledger.Get("1111", "A1")
	if got.Memo != "COFFEE SHOP #2" {
		t.Errorf("Get() after re-upsert memo = %q, want %q", got.Memo, "COFFEE SHOP #2")
	}
}

func TestLedger_QueriesSortedByDate(t *testing.T) {
	ledger := NewLedger()
	// Inserted out of order on purpose.
	ledger.Upsert(testTx("1111", "C", "2023-03-01", "-3.00", "c", ""))
	ledger.Upsert(testTx("1111", "A", "2023-01-09", "-1.00", "a", ""))
	ledger.Upsert(testTx("1111", "B", "2023-01-20", "-2.00", "b", ""))
	ledger.Upsert(testTx("2222", "X", "2023-01-10", "-9.00", "x", ""))

	all := ledger.All()
	wantOrder := []string{"A", "X", "B", "C"}
	if len(all) != len(wantOrder) {
		t.Fatalf("All() returned %d transactions, want %d", len(all), len(wantOrder))
	}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}

	byAccount := ledger.ByAccount("1111")
	if len(byAccount) != 3 {
		t.Fatalf("ByAccount(1111) returned %d transactions, want 3", len(byAccount))
	}
	for i, id := range []string{"A", "B", "C"} {
		if byAccount[i].ID != id {
			t.Errorf("ByAccount()[%d].ID = %q, want %q", i, byAccount[i].ID, id)
		}
	}
}

func TestLedger_TieBrokenByStoreOrder(t *testing.T) {
	ledger := NewLedger()
	ledger.Upsert(testTx("1111", "first", "2023-01-09", "-1.00", "", ""))
	ledger.Upsert(testTx("1111", "second", "2023-01-09", "-2.00", "", ""))
	ledger.Upsert(testTx("1111", "third", "2023-01-09", "-3.00", "", ""))

	all := ledger.All()
	for i, id := range []string{"first", "second", "third"} {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q (stable store order)", i, all[i].ID, id)
		}
	}
}

func TestLedger_ByYearMonthDay(t *testing.T) {
	ledger := NewLedger()
	ledger.Upsert(testTx("1111", "A", "2022-12-31", "-1.00", "", ""))
	ledger.Upsert(testTx("1111", "B", "2023-01-09", "-2.00", "", ""))
	ledger.Upsert(testTx("1111", "C", "2023-01-09", "-3.00", "", ""))
	ledger.Upsert(testTx("1111", "D", "2023-02-01", "-4.00", "", ""))

	if got := ledger.ByYear("1111", 2023); len(got) != 3 {
		t.Errorf("ByYear(2023) returned %d transactions, want 3", len(got))
	}

	month, err := ledger.ByMonth("1111", 2023, 1)
	if err != nil {
		t.Fatalf("ByMonth() failed: %v", err)
	}
	if len(month) != 2 {
		t.Errorf("ByMonth(2023, 1) returned %d transactions, want 2", len(month))
	}

	day, err := ledger.ByDay("1111", 2023, 1, 9)
	if err != nil {
		t.Fatalf("ByDay() failed: %v", err)
	}
	if len(day) != 2 {
		t.Errorf("ByDay(2023, 1, 9) returned %d transactions, want 2", len(day))
	}
}

func TestLedger_ByMonthRejectsInvalidMonth(t *testing.T) {
	ledger := NewLedger()
	for _, month := range []int{0, 13, -1} {
		if _, err := ledger.ByMonth("1111", 2023, month); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ByMonth(month=%d) error = %v, want ErrInvalidInput", month, err)
		}
	}
	if _, err := ledger.ByDay("1111", 2023, 1, 32); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ByDay(day=32) error = %v, want ErrInvalidInput", err)
	}
}

func TestLedger_DatesWithActivity(t *testing.T) {
	ledger := NewLedger()
	ledger.Upsert(testTx("1111", "A", "2022-12-31", "-1.00", "", ""))
	ledger.Upsert(testTx("1111", "B", "2023-01-09", "-2.00", "", ""))
	ledger.Upsert(testTx("2222", "C", "2023-03-01", "-3.00", "", ""))

	all := ledger.DatesWithActivity("")
	if len(all[2023]) != 2 || all[2023][0] != time.January || all[2023][1] != time.March {
		t.Errorf("DatesWithActivity()[2023] = %v, want [January March]", all[2023])
	}
	if len(all[2022]) != 1 || all[2022][0] != time.December {
		t.Errorf("DatesWithActivity()[2022] = %v, want [December]", all[2022])
	}

	one := ledger.DatesWithActivity("1111")
	if len(one[2023]) != 1 || one[2023][0] != time.January {
		t.Errorf("DatesWithActivity(1111)[2023] = %v, want [January]", one[2023])
	}
}

func TestLedger_ManualLabels(t *testing.T) {
	ledger := NewLedger()
	ledger.Upsert(testTx("1111", "A1", "2023-01-09", "-87.21", "COFFEE SHOP", "CoffeeCo"))

	if err := ledger.AddManualLabel("1111", "A1", Expenses, "Dining"); err != nil {
		t.Fatalf("AddManualLabel() failed: %v", err)
	}
	// Re-adding is a no-op, not a duplicate.
	if err := ledger.AddManualLabel("1111", "A1", Expenses, "Dining"); err != nil {
		t.Fatalf("AddManualLabel() second call failed: %v", err)
	}
	tx, _ := ledger.Get("1111", "A1")
	if got := tx.Manual.Names(Expenses); len(got) != 1 || got[0] != "Dining" {
		t.Errorf("manual expenses = %v, want [Dining]", got)
	}

	if err := ledger.RemoveManualLabel("1111", "A1", "Dining"); err != nil {
		t.Fatalf("RemoveManualLabel() failed: %v", err)
	}
	tx, _ = ledger.Get("1111", "A1")
	if tx.HasLabel("Dining") {
		t.Errorf("transaction still carries %q after RemoveManualLabel", "Dining")
	}

	if err := ledger.AddManualLabel("1111", "nope", Expenses, "Dining"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddManualLabel(unknown tx) error = %v, want ErrNotFound", err)
	}
}

func TestLedger_SetAccountAlias(t *testing.T) {
	ledger := NewLedger()
	ledger.Import(checking(), ImportOptions{})

	if err := ledger.SetAccountAlias("1111", "joint checking"); err != nil {
		t.Fatalf("SetAccountAlias() failed: %v", err)
	}
	a, err := ledger.Account("1111")
	if err != nil {
		t.Fatalf("Account() failed: %v", err)
	}
	if a.DisplayName() != "joint checking" {
		t.Errorf("DisplayName() = %q, want %q", a.DisplayName(), "joint checking")
	}

	if err := ledger.SetAccountAlias("9999", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetAccountAlias(unknown) error = %v, want ErrNotFound", err)
	}
}
