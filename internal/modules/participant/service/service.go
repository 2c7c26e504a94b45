package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/participant/dto"
	repo "anoa.com/casetrack/internal/modules/participant/repository"
	search "anoa.com/casetrack/internal/modules/search/service"
	"anoa.com/casetrack/pkg/apperror"
	commonDto "anoa.com/casetrack/pkg/dto"
	"anoa.com/casetrack/pkg/timeutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const searchLimit = 1000

type Service interface {
	List(ctx context.Context, query dto.ListParticipantsQuery) (*commonDto.Page[dto.ParticipantResponse], error)
	Create(ctx context.Context, req dto.CreateParticipantRequest) (uint, error)
	Get(ctx context.Context, id uint) (*dto.ParticipantResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateParticipantRequest) error
	Deactivate(ctx context.Context, id uint) error
	Reindex(ctx context.Context) (int, error)
}

type service struct {
	repo  repo.Repository
	index search.ParticipantIndex
	log   *zap.Logger
}

// NewService wires the participant service. index may be nil.
func NewService(repository repo.Repository, index search.ParticipantIndex, log *zap.Logger) Service {
	return &service{
		repo:  repository,
		index: index,
		log:   log,
	}
}

func (s *service) List(ctx context.Context, query dto.ListParticipantsQuery) (*commonDto.Page[dto.ParticipantResponse], error) {
	filter := repo.Filter{IncludeInactive: query.IncludeInactive}

	if q := strings.TrimSpace(query.Q); q != "" {
		filter.Search = q
		if s.index != nil {
			ids, err := s.index.SearchParticipants(q, searchLimit)
			if err != nil {
				s.log.Warn("participant search index unavailable, falling back to database", zap.Error(err))
			} else {
				filter.IDs = ids
			}
		}
	}

	offset, limit := 0, -1
	page := query.PageQuery
	if page.Requested() {
		page = page.Normalize()
		offset, limit = page.Offset(), page.PerPage
	}

	participants, total, err := s.repo.FindAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		items = append(items, dto.ToParticipantResponse(p))
	}

	return &commonDto.Page[dto.ParticipantResponse]{
		Items:   items,
		Page:    page.Page,
		PerPage: page.PerPage,
		Total:   total,
	}, nil
}

func (s *service) Create(ctx context.Context, req dto.CreateParticipantRequest) (uint, error) {
	v := apperror.NewValidationError()

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" {
		v.Add("first_name", "first_name is required")
	}
	if last == "" {
		v.Add("last_name", "last_name is required")
	}

	participant := &entity.Participant{
		FirstName: first,
		LastName:  last,
		Race:      optionalText(req.Race),
		Address:   optionalText(req.Address),
		Email:     optionalText(req.Email),
		Phone:     optionalText(req.Phone),
		IsActive:  true,
	}

	if dobText := optionalText(req.DOB); dobText != nil {
		dob, err := timeutil.ParseDate(*dobText)
		if err != nil {
			v.Add("dob", "dob must be YYYY-MM-DD")
		} else {
			participant.DOB = &dob
		}
	}
	if participant.Email != nil && !strings.Contains(*participant.Email, "@") {
		v.Add("email", `email must contain "@"`)
	}

	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, participant); err != nil {
		return 0, err
	}

	s.reindex(participant)
	return participant.ID, nil
}

func (s *service) Get(ctx context.Context, id uint) (*dto.ParticipantResponse, error) {
	participant, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := dto.ToParticipantResponse(participant)
	return &res, nil
}

func (s *service) Update(ctx context.Context, id uint, req dto.UpdateParticipantRequest) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	fields, err := updateFields(req)
	if err != nil {
		return err
	}

	if err := s.repo.Updates(ctx, id, fields); err != nil {
		return err
	}

	if updated, err := s.repo.FindByID(ctx, id); err == nil {
		s.reindex(updated)
	}
	return nil
}

// updateFields validates every present key before anything is written.
func updateFields(req dto.UpdateParticipantRequest) (map[string]interface{}, error) {
	v := apperror.NewValidationError()
	fields := map[string]interface{}{}

	requiredName := func(key string, opt commonDto.Optional[string]) {
		if !opt.Set {
			return
		}
		name := strings.TrimSpace(opt.Value)
		if opt.Null || name == "" {
			v.Add(key, key+" cannot be empty")
			return
		}
		fields[key] = name
	}
	requiredName("first_name", req.FirstName)
	requiredName("last_name", req.LastName)

	if req.DOB.Set {
		if req.DOB.Null || strings.TrimSpace(req.DOB.Value) == "" {
			fields["dob"] = nil
		} else if dob, err := timeutil.ParseDate(req.DOB.Value); err != nil {
			v.Add("dob", "dob must be YYYY-MM-DD")
		} else {
			fields["dob"] = dob
		}
	}

	if req.Email.Set {
		email := optionalText(req.Email.Ptr())
		if email != nil && !strings.Contains(*email, "@") {
			v.Add("email", `email must contain "@"`)
		} else {
			fields["email"] = email
		}
	}

	optional := map[string]commonDto.Optional[string]{
		"race":    req.Race,
		"address": req.Address,
		"phone":   req.Phone,
	}
	for key, opt := range optional {
		if opt.Set {
			fields[key] = optionalText(opt.Ptr())
		}
	}

	if req.IsActive.Set {
		if req.IsActive.Null {
			v.Add("is_active", "is_active cannot be null")
		} else {
			fields["is_active"] = req.IsActive.Value
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

// Deactivate soft-deletes: the row stays and remains readable by id.
func (s *service) Deactivate(ctx context.Context, id uint) error {
	participant, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Updates(ctx, id, map[string]interface{}{"is_active": false}); err != nil {
		return err
	}

	participant.IsActive = false
	s.reindex(participant)
	return nil
}

// Reindex pushes every participant, inactive included, into the search index.
func (s *service) Reindex(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, nil
	}

	participants, _, err := s.repo.FindAll(ctx, repo.Filter{IncludeInactive: true}, 0, -1)
	if err != nil {
		return 0, err
	}

	for i, p := range participants {
		if err := s.index.IndexParticipant(p); err != nil {
			return i, fmt.Errorf("index participant %d: %w", p.ID, err)
		}
	}
	return len(participants), nil
}

func (s *service) find(ctx context.Context, id uint) (*entity.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("participant not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return participant, nil
}

func (s *service) reindex(p *entity.Participant) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexParticipant(p); err != nil {
		s.log.Warn("failed to index participant", zap.Uint("id", p.ID), zap.Error(err))
	}
}

// optionalText maps a missing or blank value to nil.
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
