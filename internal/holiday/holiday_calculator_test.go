package holiday_test

import (
	"testing"
	"time"

	"github.com/RndsK/BMA/internal/holiday"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculate(t *testing.T) {
	t.Run("full year with used days and overtime credit", func(t *testing.T) {
		acceptance := date("2025-01-01")
		now := date("2026-01-01")

		// one past 5-day holiday, one upcoming 6-day holiday, one past single day
		holidays := []holiday.Period{
			{Start: date("2025-06-02"), End: date("2025-06-06")},
			{Start: date("2026-03-02"), End: date("2026-03-07")},
			{Start: date("2025-09-15"), End: date("2025-09-15")},
		}
		overtime := []int{2, 1}

		b := holiday.Calculate(acceptance, now, holidays, overtime)

		// accrued 25, used 12, credit 3
		assert.Equal(t, 16, b.Balance)
		assert.Equal(t, 6, b.UpcomingHolidays)
		assert.Equal(t, 10, b.BalanceAfter)
	})

	t.Run("accrual rounds up", func(t *testing.T) {
		acceptance := date("2026-01-01")
		now := date("2026-01-02")

		b := holiday.Calculate(acceptance, now, nil, nil)

		// 1 day of service already accrues a full day
		assert.Equal(t, 1, b.Balance)
		assert.Equal(t, 0, b.UpcomingHolidays)
		assert.Equal(t, 1, b.BalanceAfter)
	})

	t.Run("no service time accrues nothing", func(t *testing.T) {
		day := date("2026-05-01")
		b := holiday.Calculate(day, day, nil, nil)
		assert.Equal(t, 0, b.Balance)
	})

	t.Run("acceptance in the future clamps to zero", func(t *testing.T) {
		b := holiday.Calculate(date("2026-06-01"), date("2026-05-01"), nil, nil)
		assert.Equal(t, 0, b.Balance)
	})

	t.Run("used days count every period regardless of timing", func(t *testing.T) {
		acceptance := date("2025-01-01")
		now := date("2025-12-31")
		holidays := []holiday.Period{
			{Start: date("2025-02-03"), End: date("2025-02-07")},
			{Start: date("2026-01-05"), End: date("2026-01-09")},
		}

		b := holiday.Calculate(acceptance, now, holidays, nil)

		// accrued ceil(364*25/365)=25, used 10, upcoming 5
		assert.Equal(t, 15, b.Balance)
		assert.Equal(t, 5, b.UpcomingHolidays)
		assert.Equal(t, 10, b.BalanceAfter)
	})

	t.Run("balance can go negative", func(t *testing.T) {
		acceptance := date("2026-01-01")
		now := date("2026-01-15")
		holidays := []holiday.Period{
			{Start: date("2026-01-05"), End: date("2026-01-09")},
		}

		b := holiday.Calculate(acceptance, now, holidays, nil)

		assert.Equal(t, -4, b.Balance)
	})
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, holiday.InclusiveDays(date("2026-03-02"), date("2026-03-02")))
	assert.Equal(t, 5, holiday.InclusiveDays(date("2026-03-02"), date("2026-03-06")))
	assert.Equal(t, 0, holiday.InclusiveDays(date("2026-03-06"), date("2026-03-02")))
}
