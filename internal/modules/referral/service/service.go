package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anoa.com/casetrack/internal/entity"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/internal/modules/referral/dto"
	repo "anoa.com/casetrack/internal/modules/referral/repository"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/textutil"
	"gorm.io/gorm"
)

// OrganizationLookup resolves a directory entry or returns an ErrNotFound-wrapped error.
type OrganizationLookup interface {
	Get(ctx context.Context, kind string, id uint) (*entity.Organization, error)
}

type Service interface {
	List(ctx context.Context, participantID uint) ([]dto.ReferralResponse, error)
	Create(ctx context.Context, participantID uint, staffID *uint, req dto.CreateReferralRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateReferralRequest) (*dto.ReferralResponse, error)
}

type service struct {
	repo         repo.Repository
	participants participantRepo.Checker
	orgs         OrganizationLookup
}

func NewService(repository repo.Repository, participants participantRepo.Checker, orgs OrganizationLookup) Service {
	return &service{
		repo:         repository,
		participants: participants,
		orgs:         orgs,
	}
}

var statusMessage = "status must be one of: " + strings.Join(entity.ReferralStatuses, ", ")

func (s *service) List(ctx context.Context, participantID uint) ([]dto.ReferralResponse, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return nil, err
	}

	referrals, err := s.repo.FindByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ReferralResponse, 0, len(referrals))
	for _, r := range referrals {
		res = append(res, dto.ToReferralResponse(r))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, participantID uint, staffID *uint, req dto.CreateReferralRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	v := apperror.NewValidationError()
	referral := &entity.Referral{
		ParticipantID: participantID,
		StaffID:       staffID,
		Status:        entity.ReferralStatusReferred,
		Note:          textutil.PlainTextPtr(req.Note),
	}

	switch req.Kind {
	case entity.OrgKindEmployer:
		referral.EmployerID = req.OrgID
	case entity.OrgKindProvider:
		referral.ProviderID = req.OrgID
	default:
		v.Add("kind", "kind must be one of: employer, provider")
	}

	if req.OrgID == nil {
		v.Add("org_id", "org_id is required")
	} else if referral.Kind() != "" {
		if _, err := s.orgs.Get(ctx, req.Kind, *req.OrgID); err != nil {
			if !errors.Is(err, apperror.ErrNotFound) {
				return 0, err
			}
			v.Add("org_id", fmt.Sprintf("org_id does not reference an existing %s", req.Kind))
		}
	}

	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if entity.IsValidReferralStatus(status) {
			referral.Status = status
		} else {
			v.Add("status", statusMessage)
		}
	}

	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, referral); err != nil {
		return 0, err
	}
	return referral.ID, nil
}

func (s *service) Update(ctx context.Context, id uint, req dto.UpdateReferralRequest) (*dto.ReferralResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	v := apperror.NewValidationError()
	fields := map[string]interface{}{}

	if req.Status.Set {
		status := strings.TrimSpace(req.Status.Value)
		if req.Status.Null || !entity.IsValidReferralStatus(status) {
			v.Add("status", statusMessage)
		} else {
			fields["status"] = status
		}
	}
	if req.Note.Set {
		fields["note"] = textutil.PlainTextPtr(req.Note.Ptr())
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Updates(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := dto.ToReferralResponse(updated)
	return &res, nil
}

func (s *service) find(ctx context.Context, id uint) (*entity.Referral, error) {
	referral, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("referral not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return referral, nil
}
