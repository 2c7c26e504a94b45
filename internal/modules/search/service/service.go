package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"anoa.com/casetrack/internal/entity"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

const participantsIndex = "participants"

// ParticipantIndex mirrors participant names into a full-text index.
type ParticipantIndex interface {
	IndexParticipant(p *entity.Participant) error
	SearchParticipants(query string, limit int64) ([]uint, error)
}

type meiliSearchService struct {
	client meilisearch.ServiceManager
	log    *zap.Logger
}

func NewMeiliSearchService(client meilisearch.ServiceManager, log *zap.Logger) ParticipantIndex {
	s := &meiliSearchService{
		client: client,
		log:    log,
	}
	s.initIndexes()
	return s
}

func (s *meiliSearchService) initIndexes() {
	filterable := []any{"is_active"}
	if _, err := s.client.Index(participantsIndex).UpdateFilterableAttributes(&filterable); err != nil {
		s.log.Warn("failed to update participants filterable attributes", zap.Error(err))
	}

	sortable := []string{"last_name", "first_name"}
	if _, err := s.client.Index(participantsIndex).UpdateSortableAttributes(&sortable); err != nil {
		s.log.Warn("failed to update participants sortable attributes", zap.Error(err))
	}
}

type meiliParticipantDoc struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
}

func (s *meiliSearchService) IndexParticipant(p *entity.Participant) error {
	doc := meiliParticipantDoc{
		ID:        strconv.FormatUint(uint64(p.ID), 10),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     getStringOrEmpty(p.Email),
		Phone:     getStringOrEmpty(p.Phone),
		IsActive:  p.IsActive,
	}

	task, err := s.client.Index(participantsIndex).AddDocuments([]meiliParticipantDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	s.log.Debug("indexed participant", zap.Uint("id", p.ID), zap.Int64("task", task.TaskUID))
	return nil
}

type searchHits struct {
	Hits []struct {
		ID string `json:"id"`
	} `json:"hits"`
}

// SearchParticipants returns matching ids in relevance order.
func (s *meiliSearchService) SearchParticipants(query string, limit int64) ([]uint, error) {
	raw, err := s.client.Index(participantsIndex).SearchRaw(query, &meilisearch.SearchRequest{
		Limit:                limit,
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		return nil, err
	}

	var res searchHits
	if err := json.Unmarshal(*raw, &res); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]uint, 0, len(res.Hits))
	for _, h := range res.Hits {
		id, err := strconv.ParseUint(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func getStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
