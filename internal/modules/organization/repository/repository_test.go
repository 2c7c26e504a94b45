package repository

import (
	"context"
	"fmt"
	"testing"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectories_AreSeparate(t *testing.T) {
	r := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	acme := &entity.Organization{Name: "Acme Staffing"}
	require.NoError(t, r.Create(ctx, entity.OrgKindEmployer, acme))
	require.NoError(t, r.Create(ctx, entity.OrgKindProvider, &entity.Organization{Name: "Bridge Housing"}))

	employers, err := r.FindAll(ctx, entity.OrgKindEmployer, "")
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "Acme Staffing", employers[0].Name)
	assert.False(t, employers[0].CreatedAt.IsZero())

	got, err := r.FindByID(ctx, entity.OrgKindEmployer, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, acme.Name, got.Name)

	_, err = r.FindByID(ctx, entity.OrgKindProvider, acme.ID+10)
	assert.Error(t, err)

	_, err = r.FindAll(ctx, "school", "")
	assert.Error(t, err)
}

func TestFindAll_OrderFilterLimit(t *testing.T) {
	r := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	for _, name := range []string{"Zenith Co", "alpha works", "Beta Works"} {
		require.NoError(t, r.Create(ctx, entity.OrgKindEmployer, &entity.Organization{Name: name}))
	}

	works, err := r.FindAll(ctx, entity.OrgKindEmployer, "WORKS")
	require.NoError(t, err)
	require.Len(t, works, 2)
	assert.Equal(t, "Beta Works", works[0].Name)
	assert.Equal(t, "alpha works", works[1].Name)

	for i := 0; i < ListLimit+5; i++ {
		require.NoError(t, r.Create(ctx, entity.OrgKindProvider, &entity.Organization{Name: fmt.Sprintf("Provider %03d", i)}))
	}
	providers, err := r.FindAll(ctx, entity.OrgKindProvider, "")
	require.NoError(t, err)
	assert.Len(t, providers, ListLimit)
}
