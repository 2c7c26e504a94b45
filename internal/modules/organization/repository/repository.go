package repository

import (
	"context"
	"fmt"
	"strings"

	"anoa.com/casetrack/internal/entity"
	"gorm.io/gorm"
)

// ListLimit caps directory listings.
const ListLimit = 200

// Repository serves both directories; kind is entity.OrgKindEmployer or entity.OrgKindProvider.
type Repository interface {
	Create(ctx context.Context, kind string, org *entity.Organization) error
	FindByID(ctx context.Context, kind string, id uint) (*entity.Organization, error)
	FindAll(ctx context.Context, kind, search string) ([]*entity.Organization, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// TableFor maps a directory kind to its table.
func TableFor(kind string) (string, error) {
	switch kind {
	case entity.OrgKindEmployer:
		return "employers", nil
	case entity.OrgKindProvider:
		return "providers", nil
	default:
		return "", fmt.Errorf("unknown organization kind %q", kind)
	}
}

func (r *repository) table(ctx context.Context, kind string) (*gorm.DB, error) {
	name, err := TableFor(kind)
	if err != nil {
		return nil, err
	}
	return r.db.WithContext(ctx).Table(name), nil
}

func (r *repository) Create(ctx context.Context, kind string, org *entity.Organization) error {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return err
	}
	return tx.Create(org).Error
}

func (r *repository) FindByID(ctx context.Context, kind string, id uint) (*entity.Organization, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	var org entity.Organization
	if err := tx.Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindAll orders by name and caps the result at ListLimit.
func (r *repository) FindAll(ctx context.Context, kind, search string) ([]*entity.Organization, error) {
	tx, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+search+"%")
	}

	var orgs []*entity.Organization
	err = tx.Order("name ASC").Order("id ASC").Limit(ListLimit).Find(&orgs).Error
	return orgs, err
}
