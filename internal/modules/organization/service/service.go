package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/organization/dto"
	repo "anoa.com/casetrack/internal/modules/organization/repository"
	"anoa.com/casetrack/pkg/apperror"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, kind string, query dto.ListOrganizationsQuery) ([]dto.OrganizationResponse, error)
	Create(ctx context.Context, kind string, req dto.CreateOrganizationRequest) (uint, error)
	Get(ctx context.Context, kind string, id uint) (*entity.Organization, error)
}

type service struct {
	repo repo.Repository
}

func NewService(repository repo.Repository) Service {
	return &service{repo: repository}
}

func (s *service) List(ctx context.Context, kind string, query dto.ListOrganizationsQuery) ([]dto.OrganizationResponse, error) {
	orgs, err := s.repo.FindAll(ctx, kind, query.Q)
	if err != nil {
		return nil, err
	}

	res := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		res = append(res, dto.ToOrganizationResponse(o))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, kind string, req dto.CreateOrganizationRequest) (uint, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		v := apperror.NewValidationError()
		v.Add("name", "name is required")
		return 0, v.Err()
	}

	org := &entity.Organization{
		Name:        name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	}
	if err := s.repo.Create(ctx, kind, org); err != nil {
		return 0, err
	}
	return org.ID, nil
}

// Get returns a not-found error when the directory has no such entry.
func (s *service) Get(ctx context.Context, kind string, id uint) (*entity.Organization, error) {
	org, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s not found: %w", kind, apperror.ErrNotFound)
		}
		return nil, err
	}
	return org, nil
}
