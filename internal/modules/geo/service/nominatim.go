package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"anoa.com/casetrack/internal/modules/geo/dto"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	resultLimit         = "5"
)

// Geocoder turns free text into candidate addresses.
type Geocoder interface {
	Search(ctx context.Context, q string) ([]dto.Address, error)
}

type NominatimClient struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

func NewNominatimClient(endpoint, userAgent string, timeout time.Duration) *NominatimClient {
	if endpoint == "" {
		endpoint = DefaultNominatimURL
	}
	return &NominatimClient{
		endpoint:  endpoint,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (n *NominatimClient) Search(ctx context.Context, q string) ([]dto.Address, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", q)
	params.Set("addressdetails", "1")
	params.Set("limit", resultLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nominatim returned status %d: %s", resp.StatusCode, string(body))
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	out := make([]dto.Address, 0, len(places))
	for _, p := range places {
		out = append(out, dto.Address{Label: p.DisplayName, Lat: p.Lat, Lon: p.Lon})
	}
	return out, nil
}
