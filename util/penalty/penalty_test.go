package penalty

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOnTimeReturn(t *testing.T) {
	due := date("2023-01-10T00:00:00Z")
	res := Calculate(due, due, 1.0)
	if res.Penalty != 0 || res.IsLate || res.DaysLate != 0 {
		t.Fatalf("got %+v; want zero result for return at due instant", res)
	}
}

func TestEarlyReturn(t *testing.T) {
	res := Calculate(date("2023-01-10T00:00:00Z"), date("2023-01-05T00:00:00Z"), 1.0)
	if res.Penalty != 0 || res.IsLate {
		t.Fatalf("got %+v; want zero result for early return", res)
	}
}

func TestOneDayLate(t *testing.T) {
	res := Calculate(date("2023-01-10T00:00:00Z"), date("2023-01-11T00:00:00Z"), 2.0)
	if res.Penalty != 2.0 || !res.IsLate || res.DaysLate != 1 {
		t.Fatalf("got %+v; want penalty 2.0, daysLate 1", res)
	}
}

func TestFiveDaysLate(t *testing.T) {
	res := Calculate(date("2023-01-10T00:00:00Z"), date("2023-01-15T00:00:00Z"), 0.5)
	if res.Penalty != 2.5 || res.DaysLate != 5 {
		t.Fatalf("got %+v; want penalty 2.5, daysLate 5", res)
	}
}

func TestPartialDayRoundsUp(t *testing.T) {
	due := date("2023-01-10T00:00:00Z")
	returned := due.Add(24*time.Hour + time.Millisecond)
	res := Calculate(due, returned, 1.0)
	if res.DaysLate != 2 {
		t.Fatalf("got daysLate %d; want 2 (ceiling rounding)", res.DaysLate)
	}
	if res.Penalty != 2.0 {
		t.Fatalf("got penalty %v; want 2.0", res.Penalty)
	}
}

func TestOneMillisecondLate(t *testing.T) {
	due := date("2023-01-10T00:00:00Z")
	res := Calculate(due, due.Add(time.Millisecond), 1.5)
	if res.DaysLate != 1 || res.Penalty != 1.5 || !res.IsLate {
		t.Fatalf("got %+v; want a full day charged", res)
	}
}
