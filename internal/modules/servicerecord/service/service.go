package service

import (
	"context"
	"strings"

	"anoa.com/casetrack/internal/entity"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/internal/modules/servicerecord/dto"
	repo "anoa.com/casetrack/internal/modules/servicerecord/repository"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/textutil"
	"anoa.com/casetrack/pkg/timeutil"
)

type Service interface {
	List(ctx context.Context, participantID uint) ([]dto.ServiceResponse, error)
	Create(ctx context.Context, participantID uint, staffID *uint, req dto.CreateServiceRequest) (uint, error)
}

type service struct {
	repo         repo.Repository
	participants participantRepo.Checker
}

func NewService(repository repo.Repository, participants participantRepo.Checker) Service {
	return &service{repo: repository, participants: participants}
}

func (s *service) List(ctx context.Context, participantID uint) ([]dto.ServiceResponse, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return nil, err
	}

	records, err := s.repo.FindByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ServiceResponse, 0, len(records))
	for _, r := range records {
		res = append(res, dto.ToServiceResponse(r))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, participantID uint, staffID *uint, req dto.CreateServiceRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	v := apperror.NewValidationError()
	record := &entity.ServiceRecord{
		ParticipantID: participantID,
		ServiceType:   strings.TrimSpace(req.ServiceType),
		Note:          textutil.PlainTextPtr(req.Note),
		StaffID:       staffID,
	}
	if record.ServiceType == "" {
		v.Add("service_type", "service_type is required")
	}
	if req.ProvidedAt != nil && strings.TrimSpace(*req.ProvidedAt) != "" {
		at, _, err := timeutil.ParseBound(*req.ProvidedAt)
		if err != nil {
			v.Add("provided_at", "provided_at must be an ISO date or datetime")
		}
		record.ProvidedAt = at
	}
	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return 0, err
	}
	return record.ID, nil
}
