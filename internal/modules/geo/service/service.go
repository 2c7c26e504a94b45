package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"anoa.com/casetrack/internal/modules/geo/dto"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/cache"
	"go.uber.org/zap"
)

type Service interface {
	Lookup(ctx context.Context, q string) ([]dto.Address, error)
}

type service struct {
	geocoder Geocoder
	cache    *cache.Client
	ttl      time.Duration
	log      *zap.Logger
}

// NewService caches successful lookups for ttl. cache may be nil.
func NewService(geocoder Geocoder, c *cache.Client, ttl time.Duration, log *zap.Logger) Service {
	return &service{
		geocoder: geocoder,
		cache:    c,
		ttl:      ttl,
		log:      log,
	}
}

func cacheKey(q string) string {
	return "geocode:" + strings.ToLower(q)
}

func (s *service) Lookup(ctx context.Context, q string) ([]dto.Address, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.Address{}, nil
	}

	if cached := s.cache.Get(ctx, cacheKey(q)); cached != nil {
		var out []dto.Address
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	out, err := s.geocoder.Search(ctx, q)
	if err != nil {
		s.log.Warn("address lookup failed", zap.String("q", q), zap.Error(err))
		return nil, apperror.New(http.StatusBadGateway, "address lookup failed", fmt.Errorf("%w: %v", apperror.ErrUpstream, err))
	}

	if payload, err := json.Marshal(out); err == nil {
		s.cache.Set(ctx, cacheKey(q), payload, s.ttl)
	}
	return out, nil
}
