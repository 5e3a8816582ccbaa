package signoff

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=signoff_repo.go -destination=mock/signoff_repo_mock.go -package=mock

// Repository owns the participant rows. WithTx binds it to an open
// transaction so participants commit with the request that names them.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateAll(ctx context.Context, participants []SignOffParticipant) error
	ListByRequest(ctx context.Context, requestID uint) ([]SignOffParticipant, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateAll(ctx context.Context, participants []SignOffParticipant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&participants).Error
}

func (r *repository) ListByRequest(ctx context.Context, requestID uint) ([]SignOffParticipant, error) {
	var participants []SignOffParticipant
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id").
		Find(&participants).Error
	return participants, err
}
