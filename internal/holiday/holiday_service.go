package holiday

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/RndsK/BMA/internal/company"
	companyerrors "github.com/RndsK/BMA/internal/company/errors"
	"github.com/RndsK/BMA/internal/domain"
	holidayerrors "github.com/RndsK/BMA/internal/holiday/errors"
	"github.com/RndsK/BMA/internal/joinrequest"
	"github.com/RndsK/BMA/internal/request"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnchorSource yields the approved join request whose acceptance date
// starts holiday accrual. The join request repository satisfies it.
type AnchorSource interface {
	FindAcceptedForEmployee(ctx context.Context, employeeID string, companyID uint) (*joinrequest.JoinRequest, error)
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetBalance(ctx context.Context, actor domain.Principal, companyID uint) (Balance, error)
	ListUpcoming(ctx context.Context, actor domain.Principal, companyID uint) ([]any, error)
	ListCompanyByMonth(ctx context.Context, actor domain.Principal, companyID uint, month int) ([]any, error)
	BankHolidays(ctx context.Context, countryCode string) ([]PublicHoliday, error)
}

type service struct {
	repo      Repository
	anchors   AnchorSource
	companies company.Repository
	bank      BankHolidayClient
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, anchors AnchorSource, companies company.Repository, bank BankHolidayClient, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{
		repo:      repo,
		anchors:   anchors,
		companies: companies,
		bank:      bank,
		now:       time.Now,
		logger:    l,
	}
}

// GetBalance computes the actor's holiday account in a company.
// Accrual runs from the acceptance date of the approved join request;
// without one there is nothing to accrue from.
func (s *service) GetBalance(ctx context.Context, actor domain.Principal, companyID uint) (Balance, error) {
	anchor, err := s.anchors.FindAcceptedForEmployee(ctx, actor.EmployeeID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Balance{}, holidayerrors.ErrMissingAccrualAnchor
		}
		return Balance{}, err
	}
	if anchor.AcceptanceDate == nil {
		return Balance{}, holidayerrors.ErrMissingAccrualAnchor
	}

	periods, err := s.repo.ListPeriods(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return Balance{}, err
	}
	overtime, err := s.repo.ListOvertimeDays(ctx, actor.EmployeeID)
	if err != nil {
		return Balance{}, err
	}

	balance := Calculate(*anchor.AcceptanceDate, s.now(), periods, overtime)
	s.logger.Debug("holiday balance computed",
		zap.String("employee_id", actor.EmployeeID),
		zap.Uint("company_id", companyID),
		zap.Int("balance", balance.Balance),
		zap.Int("upcoming", balance.UpcomingHolidays),
	)
	return balance, nil
}

func (s *service) ListUpcoming(ctx context.Context, actor domain.Principal, companyID uint) ([]any, error) {
	rows, err := s.repo.ListUpcoming(ctx, actor.EmployeeID, companyID, s.now())
	if err != nil {
		return nil, err
	}
	return mapRows(rows)
}

func (s *service) ListCompanyByMonth(ctx context.Context, actor domain.Principal, companyID uint, month int) ([]any, error) {
	if month < 0 || month > 12 {
		return nil, holidayerrors.ErrInvalidMonth
	}

	member, err := s.companies.IsMember(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, companyerrors.ErrNotCompanyMember
	}

	rows, err := s.repo.ListForCompanyByMonth(ctx, companyID, month)
	if err != nil {
		return nil, err
	}
	return mapRows(rows)
}

// BankHolidays looks up the current year's public holidays for a
// country. Informational; upstream failures surface as an empty list
// inside the client.
func (s *service) BankHolidays(ctx context.Context, countryCode string) ([]PublicHoliday, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if !validCountryCode(code) {
		return nil, holidayerrors.ErrInvalidCountryCode
	}
	return s.bank.ForCountry(ctx, code, s.now().Year())
}

func validCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func mapRows(rows []request.Request) ([]any, error) {
	items := make([]any, len(rows))
	for i, row := range rows {
		item, err := request.MapToResponse(row)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
