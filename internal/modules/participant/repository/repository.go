package repository

import (
	"context"
	"fmt"
	"strings"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/pkg/apperror"
	"gorm.io/gorm"
)

type Filter struct {
	IncludeInactive bool
	Search          string
	// IDs are search index hits. They widen the name/email match so rows the
	// index has not caught up with still show.
	IDs []uint
}

// Checker is the slice of the repository that scoped record services need.
type Checker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type Repository interface {
	Checker

	Create(ctx context.Context, participant *entity.Participant) error
	FindByID(ctx context.Context, id uint) (*entity.Participant, error)
	FindAll(ctx context.Context, filter Filter, offset, limit int) ([]*entity.Participant, int64, error)
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, participant *entity.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*entity.Participant, error) {
	var participant entity.Participant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindAll orders by (last_name, first_name, id). limit < 0 means no limit.
func (r *repository) FindAll(ctx context.Context, filter Filter, offset, limit int) ([]*entity.Participant, int64, error) {
	var participants []*entity.Participant
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Participant{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	like := "%" + search + "%"
	switch {
	case search != "" && len(filter.IDs) > 0:
		query = query.Where(
			"id IN ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			filter.IDs, like, like, like,
		)
	case search != "":
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	case len(filter.IDs) > 0:
		query = query.Where("id IN ?", filter.IDs)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("last_name ASC").Order("first_name ASC").Order("id ASC")
	if limit >= 0 {
		query = query.Offset(offset).Limit(limit)
	}

	if err := query.Find(&participants).Error; err != nil {
		return nil, 0, err
	}
	return participants, total, nil
}

func (r *repository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.Participant{ID: id}).Updates(fields).Error
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Participant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureExists returns a not-found error when the participant is absent.
func EnsureExists(ctx context.Context, c Checker, id uint) error {
	ok, err := c.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("participant not found: %w", apperror.ErrNotFound)
	}
	return nil
}
