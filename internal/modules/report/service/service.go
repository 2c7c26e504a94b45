package service

import (
	"context"
	"time"

	"anoa.com/casetrack/internal/entity"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/internal/modules/report/dto"
	repo "anoa.com/casetrack/internal/modules/report/repository"
	"anoa.com/casetrack/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	Window(query dto.WindowQuery) (dto.Window, error)
	Summary(ctx context.Context, w dto.Window) (*dto.Summary, error)
	Enrollments(ctx context.Context, w dto.Window) ([]dto.DateCount, error)
	ServicesByType(ctx context.Context, w dto.Window) ([]dto.TypeCount, error)
	ServicesByTypeAndDate(ctx context.Context, w dto.Window) ([]dto.TypeDateCount, error)
	Referrals(ctx context.Context) ([]dto.ReferralCount, error)
	Outcomes(ctx context.Context) ([]dto.OutcomeCount, error)
	Participants(ctx context.Context, query dto.ParticipantExportQuery) ([]dto.ParticipantRow, error)
	Services(ctx context.Context, w dto.Window) ([]dto.ServiceRow, error)
}

type Options struct {
	StrictDates bool
	Now         func() time.Time
}

type service struct {
	repo         repo.Repository
	participants participantRepo.Repository
	strict       bool
	now          func() time.Time
}

func NewService(repository repo.Repository, participants participantRepo.Repository, opts Options) Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:         repository,
		participants: participants,
		strict:       opts.StrictDates,
		now:          now,
	}
}

func (s *service) Window(query dto.WindowQuery) (dto.Window, error) {
	return ParseWindow(query.FromValue(), query.ToValue(), s.now(), s.strict)
}

func (s *service) Summary(ctx context.Context, w dto.Window) (*dto.Summary, error) {
	res := &dto.Summary{}
	res.From, res.To = dto.FormatWindow(w)

	g, ctx := errgroup.WithContext(ctx)
	between := func(dst *int64, table, column string) {
		g.Go(func() error {
			n, err := s.repo.CountBetween(ctx, table, column, w)
			*dst = n
			return err
		})
	}
	all := func(dst *int64, table string) {
		g.Go(func() error {
			n, err := s.repo.CountAll(ctx, table)
			*dst = n
			return err
		})
	}

	between(&res.Participants, "participants", "created_at")
	between(&res.CaseNotes, "case_notes", "created_at")
	between(&res.Services, "services", "provided_at")
	between(&res.Referrals, "referrals", "referred_at")
	all(&res.Employers, "employers")
	all(&res.Providers, "providers")

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Enrollments(ctx context.Context, w dto.Window) ([]dto.DateCount, error) {
	return s.repo.Enrollments(ctx, w)
}

func (s *service) ServicesByType(ctx context.Context, w dto.Window) ([]dto.TypeCount, error) {
	return s.repo.ServicesByType(ctx, w)
}

func (s *service) ServicesByTypeAndDate(ctx context.Context, w dto.Window) ([]dto.TypeDateCount, error) {
	return s.repo.ServicesByTypeAndDate(ctx, w)
}

func (s *service) Referrals(ctx context.Context) ([]dto.ReferralCount, error) {
	return s.repo.Referrals(ctx)
}

func (s *service) Outcomes(ctx context.Context) ([]dto.OutcomeCount, error) {
	return s.repo.Outcomes(ctx)
}

// Participants exports the same rows and order as the participant list.
func (s *service) Participants(ctx context.Context, query dto.ParticipantExportQuery) ([]dto.ParticipantRow, error) {
	participants, _, err := s.participants.FindAll(ctx, participantRepo.Filter{
		IncludeInactive: query.IncludeInactive,
		Search:          query.Q,
	}, 0, -1)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ParticipantRow, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, participantRow(p))
	}
	return rows, nil
}

func (s *service) Services(ctx context.Context, w dto.Window) ([]dto.ServiceRow, error) {
	services, err := s.repo.Services(ctx, w)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ServiceRow, 0, len(services))
	for _, svc := range services {
		p := entity.Participant{FirstName: svc.FirstName, LastName: svc.LastName}
		rows = append(rows, dto.ServiceRow{
			ID:              svc.ID,
			ParticipantID:   svc.ParticipantID,
			ParticipantName: p.FullName(),
			ServiceType:     svc.ServiceType,
			Note:            svc.Note,
			StaffID:         svc.StaffID,
			ProvidedAt:      timeutil.FormatDateTime(svc.ProvidedAt),
		})
	}
	return rows, nil
}

func participantRow(p *entity.Participant) dto.ParticipantRow {
	return dto.ParticipantRow{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		DOB:       timeutil.FormatDate(p.DOB),
		Race:      p.Race,
		Address:   p.Address,
		Email:     p.Email,
		Phone:     p.Phone,
		IsActive:  p.IsActive,
		CreatedAt: timeutil.FormatDateTime(p.CreatedAt),
	}
}
