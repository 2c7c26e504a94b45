package repository

import (
	"context"

	"anoa.com/casetrack/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is any outcome row scoped to a participant.
type Record interface {
	entity.Assessment | entity.Employment | entity.Education | entity.Milestone
}

type Repository[T Record] interface {
	Create(ctx context.Context, record *T) error
	FindByParticipant(ctx context.Context, participantID uint) ([]*T, error)
}

type repository[T Record] struct {
	db    *gorm.DB
	order string
}

// NewRepository lists rows newest first by the given timestamp column.
func NewRepository[T Record](db *gorm.DB, orderColumn string) Repository[T] {
	return &repository[T]{db: db, order: orderColumn + " DESC"}
}

func NewAssessmentRepository(db *gorm.DB) Repository[entity.Assessment] {
	return NewRepository[entity.Assessment](db, "created_at")
}

func NewEmploymentRepository(db *gorm.DB) Repository[entity.Employment] {
	return NewRepository[entity.Employment](db, "created_at")
}

func NewEducationRepository(db *gorm.DB) Repository[entity.Education] {
	return NewRepository[entity.Education](db, "created_at")
}

func NewMilestoneRepository(db *gorm.DB) Repository[entity.Milestone] {
	return NewRepository[entity.Milestone](db, "achieved_at")
}

func (r *repository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

func (r *repository[T]) FindByParticipant(ctx context.Context, participantID uint) ([]*T, error) {
	var records []*T
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order(r.order).
		Order("id DESC").
		Find(&records).Error
	return records, err
}
