package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/casenote/dto"
	repo "anoa.com/casetrack/internal/modules/casenote/repository"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/internal/testutil"
	"anoa.com/casetrack/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (Service, uint) {
	db := testutil.NewDB(t)
	p := &entity.Participant{FirstName: "Jane", LastName: "Doe", IsActive: true}
	require.NoError(t, db.Create(p).Error)
	return NewService(repo.NewRepository(db), participantRepo.NewRepository(db)), p.ID
}

func TestNotes_CreateAndListNewestFirst(t *testing.T) {
	svc, pid := newService(t)
	ctx := context.Background()
	staff := uint(7)

	first, err := svc.Create(ctx, pid, &staff, dto.CreateNoteRequest{Content: "intake call"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, pid, nil, dto.CreateNoteRequest{Content: "<b>follow up</b>"})
	require.NoError(t, err)

	notes, err := svc.List(ctx, pid)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second, notes[0].ID)
	assert.Equal(t, "follow up", notes[0].Content)
	assert.Nil(t, notes[0].StaffID)
	assert.Equal(t, first, notes[1].ID)
	require.NotNil(t, notes[1].StaffID)
	assert.EqualValues(t, 7, *notes[1].StaffID)
}

func TestNotes_UnknownParticipant(t *testing.T) {
	svc, pid := newService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, pid+1)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Create(ctx, pid+1, nil, dto.CreateNoteRequest{Content: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNotes_MarkupOnlyContentRejected(t *testing.T) {
	svc, pid := newService(t)

	_, err := svc.Create(context.Background(), pid, nil, dto.CreateNoteRequest{Content: "<br/>"})
	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "content")
}
