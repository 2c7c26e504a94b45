package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"anoa.com/casetrack/internal/entity"
	"github.com/meilisearch/meilisearch-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMeili struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
}

func (f *fakeMeili) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	key := r.Method + " " + r.URL.Path
	f.requests = append(f.requests, key)
	f.bodies[key] = string(body)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if strings.HasSuffix(r.URL.Path, "/search") {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"hits":[{"id":"12"},{"id":"3"},{"id":"junk"}],"query":"doe"}`)
		return
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

func newTestIndex(t *testing.T) (ParticipantIndex, *fakeMeili) {
	fake := &fakeMeili{bodies: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := meilisearch.New(srv.URL)
	return NewMeiliSearchService(client, zap.NewNop()), fake
}

func TestMeili_IndexAndSearch(t *testing.T) {
	idx, fake := newTestIndex(t)

	email := "jane@example.org"
	require.NoError(t, idx.IndexParticipant(&entity.Participant{ID: 12, FirstName: "Jane", LastName: "Doe", Email: &email, IsActive: true}))
	assert.Contains(t, fake.bodies["POST /indexes/participants/documents"], `"first_name":"Jane"`)
	assert.Contains(t, fake.bodies["POST /indexes/participants/documents"], `"id":"12"`)

	ids, err := idx.SearchParticipants("doe", 50)
	require.NoError(t, err)
	assert.Equal(t, []uint{12, 3}, ids)
	assert.Contains(t, fake.requests, "POST /indexes/participants/search")
}
