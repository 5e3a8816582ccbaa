package holiday

import (
	"math"
	"time"
)

// Period is one holiday request's date span, end inclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

// Balance is the computed holiday account of one employee in one
// company.
type Balance struct {
	Balance          int `json:"balance"`
	UpcomingHolidays int `json:"upcomingHolidays"`
	BalanceAfter     int `json:"balanceAfter"`
}

// Calculate derives the balance from the acceptance date, the
// employee's holiday periods and overtime credits:
//
//	accrued  = ceil(days since acceptance * 25 / 365)
//	used     = sum of inclusive days of every period
//	credit   = sum of overtime days
//	balance  = accrued - used + credit
//	upcoming = inclusive days of periods starting after now
//	after    = balance - upcoming
//
// Used days count every period regardless of the request's status, and
// upcoming days are counted again on top of used; both reproduce the
// behavior the rest of the workflow relies on.
func Calculate(acceptance, now time.Time, holidays []Period, overtimeDays []int) Balance {
	totalDays := int(now.Sub(acceptance).Hours() / 24)
	if totalDays < 0 {
		totalDays = 0
	}
	accrued := int(math.Ceil(float64(totalDays) * 25.0 / 365.0))

	used := 0
	upcoming := 0
	for _, p := range holidays {
		days := InclusiveDays(p.Start, p.End)
		used += days
		if p.Start.After(now) {
			upcoming += days
		}
	}

	credit := 0
	for _, d := range overtimeDays {
		credit += d
	}

	balance := accrued - used + credit
	return Balance{
		Balance:          balance,
		UpcomingHolidays: upcoming,
		BalanceAfter:     balance - upcoming,
	}
}

// InclusiveDays counts calendar days from start through end, both
// included. One-day holidays are 1.
func InclusiveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
