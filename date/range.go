package date

import "iter"

// Range represents an inclusive range of dates. A zero From or To leaves
// that side of the range open.
type Range struct{ From, To Date }

// Contains reports whether the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// IsOpen reports whether the range has no boundary at all.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }

// Months returns an iterator over successive months from d to the month of
// 'to' inclusive, stepping by AddMonths so day-of-month overflow is clamped.
func (d Date) Months(to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := d; ; on = on.AddMonths(1) {
			if on.Year() > to.Year() || (on.Year() == to.Year() && on.Month() > to.Month()) {
				return
			}
			if !yield(on) {
				return
			}
		}
	}
}
