package signoff_test

import (
	"context"
	"errors"
	"testing"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/employee"
	"github.com/RndsK/BMA/internal/shared/apperror"
	"github.com/RndsK/BMA/internal/signoff"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestTracker_Resolve(t *testing.T) {
	ctx := context.Background()

	directory := map[string]string{
		"ana@example.com":  "emp-ana",
		"ben@example.com":  "emp-ben",
		"cora@example.com": "emp-cora",
	}
	repo := &fakeEmployeeRepository{
		findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			id, ok := directory[email]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &employee.Employee{ID: id, Email: email}, nil
		},
	}
	tracker := signoff.NewTracker(repo, zap.NewNop())

	t.Run("resolves all emails in input order", func(t *testing.T) {
		ids, err := tracker.Resolve(ctx, []string{"ben@example.com", "ana@example.com", "cora@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"emp-ben", "emp-ana", "emp-cora"}, ids)
	})

	t.Run("empty input resolves to empty set", func(t *testing.T) {
		ids, err := tracker.Resolve(ctx, nil)

		assert.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("unknown email aborts naming the email", func(t *testing.T) {
		// wherever the unknown address sits, the whole set is rejected
		inputs := [][]string{
			{"ghost@example.com", "ana@example.com"},
			{"ana@example.com", "ghost@example.com"},
			{"ana@example.com", "ghost@example.com", "ben@example.com"},
		}
		for _, emails := range inputs {
			ids, err := tracker.Resolve(ctx, emails)

			assert.Nil(t, ids)
			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
			assert.Contains(t, appErr.Message, "ghost@example.com")
		}
	})

	t.Run("lookup failure is passed through", func(t *testing.T) {
		boom := errors.New("connection reset")
		failing := &fakeEmployeeRepository{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return nil, boom
			},
		}
		tr := signoff.NewTracker(failing, zap.NewNop())

		_, err := tr.Resolve(ctx, []string{"ana@example.com"})

		assert.ErrorIs(t, err, boom)
	})
}

func TestBuildParticipants(t *testing.T) {
	rows := signoff.BuildParticipants(42, []string{"emp-a", "emp-b"})

	assert.Len(t, rows, 2)
	for i, id := range []string{"emp-a", "emp-b"} {
		assert.Equal(t, uint(42), rows[i].RequestID)
		assert.Equal(t, id, rows[i].EmployeeID)
		assert.Equal(t, domain.SignOffNotSigned, rows[i].Status)
	}
}
