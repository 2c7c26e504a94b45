package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/casetrack/internal/entity"
	orgRepo "anoa.com/casetrack/internal/modules/organization/repository"
	orgService "anoa.com/casetrack/internal/modules/organization/service"
	participantRepo "anoa.com/casetrack/internal/modules/participant/repository"
	"anoa.com/casetrack/internal/modules/referral/dto"
	repo "anoa.com/casetrack/internal/modules/referral/repository"
	"anoa.com/casetrack/internal/testutil"
	"anoa.com/casetrack/pkg/apperror"
	commonDto "anoa.com/casetrack/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	svc         Service
	db          *gorm.DB
	participant uint
	employer    uint
	provider    uint
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	ctx := context.Background()

	p := &entity.Participant{FirstName: "Jane", LastName: "Doe", IsActive: true}
	require.NoError(t, db.Create(p).Error)

	orgs := orgRepo.NewRepository(db)
	employer := &entity.Organization{Name: "Acme Staffing"}
	require.NoError(t, orgs.Create(ctx, entity.OrgKindEmployer, employer))
	provider := &entity.Organization{Name: "Bridge Housing"}
	require.NoError(t, orgs.Create(ctx, entity.OrgKindProvider, provider))

	svc := NewService(repo.NewRepository(db), participantRepo.NewRepository(db), orgService.NewService(orgs))
	return fixture{svc: svc, db: db, participant: p.ID, employer: employer.ID, provider: provider.ID}
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

func TestReferral_EmployerView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.svc.Create(ctx, f.participant, uintPtr(3), dto.CreateReferralRequest{
		Kind: entity.OrgKindEmployer, OrgID: uintPtr(f.employer), Note: strPtr("warm intro"),
	})
	require.NoError(t, err)

	var stored entity.Referral
	require.NoError(t, f.db.First(&stored, id).Error)
	require.NotNil(t, stored.EmployerID)
	assert.Equal(t, f.employer, *stored.EmployerID)
	assert.Nil(t, stored.ProviderID)
	assert.Equal(t, entity.ReferralStatusReferred, stored.Status)

	views, err := f.svc.List(ctx, f.participant)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "employer", views[0].Kind)
	require.NotNil(t, views[0].OrgName)
	assert.Equal(t, "Acme Staffing", *views[0].OrgName)
	assert.NotEmpty(t, views[0].ReferredAt)
}

func TestReferral_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   dto.CreateReferralRequest
		field string
	}{
		{"unknown kind", dto.CreateReferralRequest{Kind: "school", OrgID: uintPtr(f.employer)}, "kind"},
		{"missing org", dto.CreateReferralRequest{Kind: entity.OrgKindEmployer}, "org_id"},
		{"org in other directory", dto.CreateReferralRequest{Kind: entity.OrgKindProvider, OrgID: uintPtr(f.provider + 50)}, "org_id"},
		{"bad status", dto.CreateReferralRequest{Kind: entity.OrgKindProvider, OrgID: uintPtr(f.provider), Status: strPtr("lost")}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, f.participant, nil, tt.req)
			var verr *apperror.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&entity.Referral{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err := f.svc.Create(ctx, f.participant+9, nil, dto.CreateReferralRequest{Kind: entity.OrgKindEmployer, OrgID: uintPtr(f.employer)})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReferral_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.svc.Create(ctx, f.participant, nil, dto.CreateReferralRequest{
		Kind: entity.OrgKindProvider, OrgID: uintPtr(f.provider), Note: strPtr("first"),
	})
	require.NoError(t, err)

	view, err := f.svc.Update(ctx, id, dto.UpdateReferralRequest{Status: commonDto.Some("placed")})
	require.NoError(t, err)
	assert.Equal(t, "placed", view.Status)
	require.NotNil(t, view.Note)
	assert.Equal(t, "first", *view.Note)
	require.NotNil(t, view.OrgName)
	assert.Equal(t, "Bridge Housing", *view.OrgName)

	view, err = f.svc.Update(ctx, id, dto.UpdateReferralRequest{Note: commonDto.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, view.Note)
	assert.Equal(t, "placed", view.Status)

	_, err = f.svc.Update(ctx, id, dto.UpdateReferralRequest{Status: commonDto.Some("bogus")})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = f.svc.Update(ctx, id+100, dto.UpdateReferralRequest{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
