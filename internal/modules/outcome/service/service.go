package service

import (
	"bytes"
	"context"
	"strings"
	"time"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/outcome/dto"
	repo "anoa.com/casetrack/internal/modules/outcome/repository"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/textutil"
	"anoa.com/casetrack/pkg/timeutil"
	"gorm.io/datatypes"
)

type Service interface {
	ListAssessments(ctx context.Context, participantID uint) ([]dto.AssessmentResponse, error)
	CreateAssessment(ctx context.Context, participantID uint, staffID *uint, req dto.CreateAssessmentRequest) (uint, error)
	ListEmployment(ctx context.Context, participantID uint) ([]dto.EmploymentResponse, error)
	CreateEmployment(ctx context.Context, participantID uint, req dto.CreateEmploymentRequest) (uint, error)
	ListEducation(ctx context.Context, participantID uint) ([]dto.EducationResponse, error)
	CreateEducation(ctx context.Context, participantID uint, req dto.CreateEducationRequest) (uint, error)
	ListMilestones(ctx context.Context, participantID uint) ([]dto.MilestoneResponse, error)
	CreateMilestone(ctx context.Context, participantID uint, staffID *uint, req dto.CreateMilestoneRequest) (uint, error)
}

type Repositories struct {
	Assessments repo.Repository[entity.Assessment]
	Employment  repo.Repository[entity.Employment]
	Education   repo.Repository[entity.Education]
	Milestones  repo.Repository[entity.Milestone]
}

type service struct {
	repos        Repositories
	participants participantRepo.Checker
}

func NewService(repos Repositories, participants participantRepo.Checker) Service {
	return &service{repos: repos, participants: participants}
}

// list loads a participant's rows and maps them to responses.
func list[T repo.Record, R any](ctx context.Context, s *service, r repo.Repository[T], participantID uint, to func(*T) R) ([]R, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return nil, err
	}

	records, err := r.FindByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	res := make([]R, 0, len(records))
	for _, rec := range records {
		res = append(res, to(rec))
	}
	return res, nil
}

func (s *service) ListAssessments(ctx context.Context, participantID uint) ([]dto.AssessmentResponse, error) {
	return list(ctx, s, s.repos.Assessments, participantID, dto.ToAssessmentResponse)
}

func (s *service) ListEmployment(ctx context.Context, participantID uint) ([]dto.EmploymentResponse, error) {
	return list(ctx, s, s.repos.Employment, participantID, dto.ToEmploymentResponse)
}

func (s *service) ListEducation(ctx context.Context, participantID uint) ([]dto.EducationResponse, error) {
	return list(ctx, s, s.repos.Education, participantID, dto.ToEducationResponse)
}

func (s *service) ListMilestones(ctx context.Context, participantID uint) ([]dto.MilestoneResponse, error) {
	return list(ctx, s, s.repos.Milestones, participantID, dto.ToMilestoneResponse)
}

func (s *service) CreateAssessment(ctx context.Context, participantID uint, staffID *uint, req dto.CreateAssessmentRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	v := apperror.NewValidationError()
	a := &entity.Assessment{
		ParticipantID: participantID,
		Kind:          strings.TrimSpace(req.Kind),
		Score:         req.Score,
		ScoreJSON:     normalizeJSON(req.ScoreJSON),
		StaffID:       staffID,
	}
	if a.Kind == "" {
		v.Add("kind", "kind is required")
	}
	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repos.Assessments.Create(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *service) CreateEmployment(ctx context.Context, participantID uint, req dto.CreateEmploymentRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	v := apperror.NewValidationError()
	e := &entity.Employment{
		ParticipantID: participantID,
		Employer:      strings.TrimSpace(req.Employer),
		Position:      req.Position,
		Status:        trimmed(req.Status),
	}
	if e.Employer == "" {
		v.Add("employer", "employer is required")
	}
	e.StartDate, e.EndDate = dateRange(v, req.StartDate, req.EndDate)
	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repos.Employment.Create(ctx, e); err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *service) CreateEducation(ctx context.Context, participantID uint, req dto.CreateEducationRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	v := apperror.NewValidationError()
	e := &entity.Education{
		ParticipantID: participantID,
		School:        strings.TrimSpace(req.School),
		Program:       req.Program,
		Status:        trimmed(req.Status),
	}
	if e.School == "" {
		v.Add("school", "school is required")
	}
	e.StartDate, e.EndDate = dateRange(v, req.StartDate, req.EndDate)
	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repos.Education.Create(ctx, e); err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (s *service) CreateMilestone(ctx context.Context, participantID uint, staffID *uint, req dto.CreateMilestoneRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	v := apperror.NewValidationError()
	m := &entity.Milestone{
		ParticipantID: participantID,
		Type:          strings.TrimSpace(req.Type),
		Status:        trimmed(req.Status),
		Note:          textutil.PlainTextPtr(req.Note),
		StaffID:       staffID,
	}
	if m.Type == "" {
		v.Add("type", "type is required")
	}
	if req.AchievedAt != nil && strings.TrimSpace(*req.AchievedAt) != "" {
		at, _, err := timeutil.ParseBound(*req.AchievedAt)
		if err != nil {
			v.Add("achieved_at", "achieved_at must be an ISO date or datetime")
		}
		m.AchievedAt = at
	}
	if err := v.Err(); err != nil {
		return 0, err
	}

	if err := s.repos.Milestones.Create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// dateRange parses optional start/end dates and rejects end before start.
func dateRange(v *apperror.ValidationError, start, end *string) (*time.Time, *time.Time) {
	parse := func(field string, s *string) *time.Time {
		if s == nil || strings.TrimSpace(*s) == "" {
			return nil
		}
		d, err := timeutil.ParseDate(*s)
		if err != nil {
			v.Add(field, field+" must be YYYY-MM-DD")
			return nil
		}
		return &d
	}

	from := parse("start_date", start)
	to := parse("end_date", end)
	if from != nil && to != nil && to.Before(*from) {
		v.Add("end_date", "end_date must not be before start_date")
	}
	return from, to
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func normalizeJSON(j datatypes.JSON) datatypes.JSON {
	if len(bytes.TrimSpace(j)) == 0 || bytes.Equal(bytes.TrimSpace(j), []byte("null")) {
		return nil
	}
	return j
}
