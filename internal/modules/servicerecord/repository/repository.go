package repository

import (
	"context"

	"anoa.com/casetrack/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, record *entity.ServiceRecord) error
	FindByParticipant(ctx context.Context, participantID uint) ([]*entity.ServiceRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *entity.ServiceRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

// FindByParticipant returns services most recently provided first.
func (r *repository) FindByParticipant(ctx context.Context, participantID uint) ([]*entity.ServiceRecord, error) {
	var records []*entity.ServiceRecord
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("provided_at DESC").
		Order("id DESC").
		Find(&records).Error
	return records, err
}
