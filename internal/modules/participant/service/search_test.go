package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"anoa.com/casetrack/internal/modules/participant/dto"
	repo "anoa.com/casetrack/internal/modules/participant/repository"
	search "anoa.com/casetrack/internal/modules/search/service"
	"anoa.com/casetrack/internal/testutil"
	"github.com/meilisearch/meilisearch-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// emptyMeili accepts every write and answers every search with no hits.
type emptyMeili struct {
	mu        sync.Mutex
	documents int
}

func (f *emptyMeili) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	w.Header().Set("Content-Type", "application/json")

	if strings.HasSuffix(r.URL.Path, "/search") {
		_, _ = io.WriteString(w, `{"hits":[],"query":""}`)
		return
	}
	if strings.HasSuffix(r.URL.Path, "/documents") {
		f.mu.Lock()
		f.documents++
		f.mu.Unlock()
	}
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"taskUid":    1,
		"indexUid":   "participants",
		"status":     "enqueued",
		"type":       "documentAdditionOrUpdate",
		"enqueuedAt": "2024-01-01T00:00:00Z",
	})
}

func TestService_SearchWithLaggingIndex(t *testing.T) {
	fake := &emptyMeili{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	log := zap.NewNop()
	index := search.NewMeiliSearchService(meilisearch.New(srv.URL), log)
	svc := NewService(repo.NewRepository(testutil.NewDB(t)), index, log)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateParticipantRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateParticipantRequest{FirstName: "John", LastName: "Smith"})
	require.NoError(t, err)

	page, err := svc.List(ctx, dto.ListParticipantsQuery{Q: "doe"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Jane Doe", page.Items[0].Name)

	n, err := svc.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 4, fake.documents)
}
