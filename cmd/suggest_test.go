package cmd

import "testing"

func TestClosestLabel(t *testing.T) {
	labels := []string{"Dining", "Groceries", "Rent", "Utilities"}

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"near miss", "Dinning", "Dining", true},
		{"case-insensitive", "groceries", "Groceries", true},
		{"too far", "Zebra", "", false},
		{"exact", "Rent", "Rent", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := closestLabel(tt.in, labels)
			if ok != tt.ok || got != tt.want {
				t.Errorf("closestLabel(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}

	if _, ok := closestLabel("anything", nil); ok {
		t.Errorf("closestLabel() suggested from no candidates")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config()
	if cfg.DataDir == "" {
		t.Errorf("default DataDir is empty")
	}
	if cfg.Currency == "" {
		t.Errorf("default Currency is empty")
	}
}
