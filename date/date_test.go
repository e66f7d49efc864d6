package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2023-13-01", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddMonths_Clamps(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"jan 31 to feb 28", New(2023, time.January, 31), 1, New(2023, time.February, 28)},
		{"jan 31 to feb 29 leap", New(2024, time.January, 31), 1, New(2024, time.February, 29)},
		{"mar 31 to apr 30", New(2023, time.March, 31), 1, New(2023, time.April, 30)},
		{"dec to jan next year", New(2023, time.December, 15), 1, New(2024, time.January, 15)},
		{"backwards", New(2023, time.March, 31), -1, New(2023, time.February, 28)},
		{"plain", New(2023, time.May, 9), 2, New(2023, time.July, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AddMonths(tt.n); got != tt.want {
				t.Errorf("AddMonths(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2023, time.January, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(b) != `"2023-01-09"` {
		t.Errorf("Marshal() = %s, want %q", b, "2023-01-09")
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2023, time.January, 9)
	b := New(2023, time.January, 10)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() is inconsistent for %v and %v", a, b)
	}
}
