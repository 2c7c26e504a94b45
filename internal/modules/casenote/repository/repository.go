package repository

import (
	"context"

	"anoa.com/casetrack/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, note *entity.CaseNote) error
	FindByParticipant(ctx context.Context, participantID uint) ([]*entity.CaseNote, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, note *entity.CaseNote) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(note).Error
}

// FindByParticipant returns notes newest first.
func (r *repository) FindByParticipant(ctx context.Context, participantID uint) ([]*entity.CaseNote, error) {
	var notes []*entity.CaseNote
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notes).Error
	return notes, err
}
