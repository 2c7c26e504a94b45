package repository

import (
	"context"

	"anoa.com/casetrack/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, referral *entity.Referral) error
	FindByID(ctx context.Context, id uint) (*entity.Referral, error)
	FindByParticipant(ctx context.Context, participantID uint) ([]*entity.Referral, error)
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) withOrgs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Employer").Preload("Provider")
}

func (r *repository) Create(ctx context.Context, referral *entity.Referral) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(referral).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*entity.Referral, error) {
	var referral entity.Referral
	if err := r.withOrgs(ctx).First(&referral, id).Error; err != nil {
		return nil, err
	}
	return &referral, nil
}

// FindByParticipant returns referrals newest first with their organizations loaded.
func (r *repository) FindByParticipant(ctx context.Context, participantID uint) ([]*entity.Referral, error) {
	var referrals []*entity.Referral
	err := r.withOrgs(ctx).
		Where("participant_id = ?", participantID).
		Order("referred_at DESC").
		Order("id DESC").
		Find(&referrals).Error
	return referrals, err
}

func (r *repository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.Referral{ID: id}).Updates(fields).Error
}
