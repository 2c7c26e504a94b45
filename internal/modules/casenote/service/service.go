package service

import (
	"context"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/casenote/dto"
	repo "anoa.com/casetrack/internal/modules/casenote/repository"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/textutil"
)

type Service interface {
	List(ctx context.Context, participantID uint) ([]dto.NoteResponse, error)
	Create(ctx context.Context, participantID uint, staffID *uint, req dto.CreateNoteRequest) (uint, error)
}

type service struct {
	repo         repo.Repository
	participants participantRepo.Checker
}

func NewService(repository repo.Repository, participants participantRepo.Checker) Service {
	return &service{repo: repository, participants: participants}
}

func (s *service) List(ctx context.Context, participantID uint) ([]dto.NoteResponse, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return nil, err
	}

	notes, err := s.repo.FindByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, dto.ToNoteResponse(n))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, participantID uint, staffID *uint, req dto.CreateNoteRequest) (uint, error) {
	if err := participantRepo.EnsureExists(ctx, s.participants, participantID); err != nil {
		return 0, err
	}

	content := textutil.PlainText(req.Content)
	if content == "" {
		v := apperror.NewValidationError()
		v.Add("content", "content is required")
		return 0, v
	}

	note := &entity.CaseNote{
		ParticipantID: participantID,
		StaffID:       staffID,
		Content:       content,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return 0, err
	}
	return note.ID, nil
}
