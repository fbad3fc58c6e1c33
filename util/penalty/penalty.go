package penalty

import "time"

const msPerDay = 24 * 60 * 60 * 1000

// Result describes the outcome of a late-return computation.
type Result struct {
	Penalty  float64
	IsLate   bool
	DaysLate int
}

// Calculate computes the penalty owed when a loan due at due is handed back
// at returned, charging perDay per overdue day. A return at the exact due
// instant is on time; any started day past the due date counts as a full day.
func Calculate(due, returned time.Time, perDay float64) Result {
	if !returned.After(due) {
		return Result{}
	}

	diffMs := returned.Sub(due).Milliseconds()
	daysLate := int((diffMs + msPerDay - 1) / msPerDay)
	if daysLate <= 0 {
		return Result{}
	}

	return Result{
		Penalty:  float64(daysLate) * perDay,
		IsLate:   true,
		DaysLate: daysLate,
	}
}
