package holiday

import (
	"context"
	"time"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/request"
	"github.com/RndsK/BMA/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	ListPeriods(ctx context.Context, employeeID string, companyID uint) ([]Period, error)
	ListOvertimeDays(ctx context.Context, employeeID string) ([]int, error)
	ListUpcoming(ctx context.Context, employeeID string, companyID uint, after time.Time) ([]request.Request, error)
	ListForCompanyByMonth(ctx context.Context, companyID uint, month int) ([]request.Request, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListPeriods returns every holiday request span of the employee in
// the company, whatever its status. Balance math counts them all.
func (r *repository) ListPeriods(ctx context.Context, employeeID string, companyID uint) ([]Period, error) {
	var rows []request.Request
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", request.KindHoliday).
		Where("employee_id = ?", employeeID).
		Order("start_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	periods := make([]Period, 0, len(rows))
	for _, row := range rows {
		if row.StartDate == nil || row.EndDate == nil {
			continue
		}
		periods = append(periods, Period{Start: *row.StartDate, End: *row.EndDate})
	}
	return periods, nil
}

// ListOvertimeDays returns the employee's overtime credits. Not scoped
// to a company; credits earned anywhere count everywhere.
func (r *repository) ListOvertimeDays(ctx context.Context, employeeID string) ([]int, error) {
	var rows []request.Request
	err := r.db.WithContext(ctx).
		Where("kind = ?", request.KindOvertime).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	days := make([]int, 0, len(rows))
	for _, row := range rows {
		if row.Length == nil {
			continue
		}
		days = append(days, *row.Length)
	}
	return days, nil
}

func (r *repository) ListUpcoming(ctx context.Context, employeeID string, companyID uint, after time.Time) ([]request.Request, error) {
	var rows []request.Request
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", request.KindHoliday).
		Where("employee_id = ?", employeeID).
		Where("status = ?", domain.StatusApproved).
		Where("start_date > ?", after).
		Order("start_date").
		Find(&rows).Error
	return rows, err
}

// ListForCompanyByMonth returns the company's approved holidays,
// optionally narrowed to start dates in one month. month 0 means no
// filter.
func (r *repository) ListForCompanyByMonth(ctx context.Context, companyID uint, month int) ([]request.Request, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", request.KindHoliday).
		Where("status = ?", domain.StatusApproved)
	if month > 0 {
		q = q.Where("EXTRACT(MONTH FROM start_date) = ?", month)
	}

	var rows []request.Request
	err := q.Order("start_date").Find(&rows).Error
	return rows, err
}
