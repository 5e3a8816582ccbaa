package signoff

import (
	"context"
	"errors"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/employee"
	signofferrors "github.com/RndsK/BMA/internal/signoff/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=signoff_tracker.go -destination=mock/signoff_tracker_mock.go -package=mock

// Tracker resolves participant emails into employee IDs ahead of
// persisting a request that names them.
type Tracker interface {
	Resolve(ctx context.Context, emails []string) ([]string, error)
}

type tracker struct {
	employees employee.Repository
	logger    *zap.Logger
}

func NewTracker(employees employee.Repository, logger ...*zap.Logger) Tracker {
	l := zap.L().Named("signoff.tracker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("signoff.tracker")
	}
	return &tracker{employees: employees, logger: l}
}

// Resolve maps every email to an employee ID in input order. The first
// email that does not resolve aborts the whole call, so a request never
// ends up with a partial participant set.
func (t *tracker) Resolve(ctx context.Context, emails []string) ([]string, error) {
	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		e, err := t.employees.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				t.logger.Warn("participant email not found", zap.String("email", email))
				return nil, signofferrors.ErrParticipantNotFound(email)
			}
			return nil, err
		}
		ids = append(ids, e.ID)
	}
	return ids, nil
}

// BuildParticipants turns resolved employee IDs into Not Signed rows
// for the given request.
func BuildParticipants(requestID uint, employeeIDs []string) []SignOffParticipant {
	participants := make([]SignOffParticipant, len(employeeIDs))
	for i, id := range employeeIDs {
		participants[i] = SignOffParticipant{
			RequestID:  requestID,
			EmployeeID: id,
			Status:     domain.SignOffNotSigned,
		}
	}
	return participants
}
