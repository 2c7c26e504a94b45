package repository

import (
	"context"
	"testing"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r Repository, first, last string, active bool) *entity.Participant {
	t.Helper()
	p := &entity.Participant{FirstName: first, LastName: last, IsActive: true}
	require.NoError(t, r.Create(context.Background(), p))
	if !active {
		require.NoError(t, r.Updates(context.Background(), p.ID, map[string]interface{}{"is_active": false}))
	}
	return p
}

func names(ps []*entity.Participant) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.FullName())
	}
	return out
}

func TestFindAll_OrderAndActiveFilter(t *testing.T) {
	r := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	seed(t, r, "Zed", "Adams", true)
	seed(t, r, "Amy", "Baker", true)
	seed(t, r, "Ann", "Adams", false)
	seed(t, r, "Bob", "Adams", true)

	active, total, err := r.FindAll(ctx, Filter{}, 0, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"Bob Adams", "Zed Adams", "Amy Baker"}, names(active))

	all, total, err := r.FindAll(ctx, Filter{IncludeInactive: true}, 0, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Equal(t, []string{"Ann Adams", "Bob Adams", "Zed Adams", "Amy Baker"}, names(all))

	page, total, err := r.FindAll(ctx, Filter{IncludeInactive: true}, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Equal(t, []string{"Bob Adams", "Zed Adams"}, names(page))
}

func TestFindAll_Search(t *testing.T) {
	r := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	jane := seed(t, r, "Jane", "Doe", true)
	john := seed(t, r, "John", "Smith", true)

	found, _, err := r.FindAll(ctx, Filter{Search: "DOE"}, 0, -1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, jane.ID, found[0].ID)

	byID, _, err := r.FindAll(ctx, Filter{Search: "jon", IDs: []uint{john.ID}}, 0, -1)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, john.ID, byID[0].ID)

	// index hits and name matches are combined
	both, total, err := r.FindAll(ctx, Filter{Search: "doe", IDs: []uint{john.ID}}, 0, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []string{"Jane Doe", "John Smith"}, names(both))

	// an empty hit list still matches by name
	fallback, _, err := r.FindAll(ctx, Filter{Search: "doe", IDs: []uint{}}, 0, -1)
	require.NoError(t, err)
	require.Len(t, fallback, 1)
	assert.Equal(t, jane.ID, fallback[0].ID)
}

func TestUpdatesAndExists(t *testing.T) {
	r := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	p := seed(t, r, "Jane", "Doe", true)
	require.NoError(t, r.Updates(ctx, p.ID, map[string]interface{}{"address": "123 Main St"}))

	got, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, "123 Main St", *got.Address)
	assert.Equal(t, "Jane", got.FirstName)

	ok, err := r.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Exists(ctx, p.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}
