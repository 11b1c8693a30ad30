package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"leadharvest/internal/models"
	"leadharvest/pkg/logger"
	"leadharvest/pkg/metrics"
)

// legacyDetailFields is the fixed field set requested from the Details
// endpoint. Phone and website only exist here, not in the search response.
const legacyDetailFields = "name,formatted_address,formatted_phone_number," +
	"international_phone_number,website,rating,user_ratings_total,geometry,types"

// legacySearchRadius is the meter radius sent with every text search.
const legacySearchRadius = "50000"

// LegacyClient talks to the legacy Text Search / Place Details API.
type LegacyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type legacySearchResponse struct {
	Status  string            `json:"status"`
	Results []models.RawPlace `json:"results"`
}

type legacyDetailsResponse struct {
	Status string          `json:"status"`
	Result models.RawPlace `json:"result"`
}

func (c *LegacyClient) Variant() string {
	return VariantLegacy
}

func (c *LegacyClient) SearchText(ctx context.Context, query, location string, limit int) ([]models.RawPlace, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	// Missing key is a soft failure on this variant: log and return nothing.
	if c.apiKey == "" {
		logger.GlobalLogger.Errorf("Places API key is not set, returning no results: query=%q", query)
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", buildSearchQuery(query, location))
	params.Set("key", c.apiKey)
	params.Set("radius", legacySearchRadius)
	searchURL := c.baseURL + "/textsearch/json?" + params.Encode()

	logger.GlobalLogger.Printf("Searching places (legacy): query=%q", buildSearchQuery(query, location))

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create text search request: url=%s, error=%v", searchURL, err)
		return nil, fmt.Errorf("places text search request failed: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "search").Inc()
		logger.GlobalLogger.Errorf("Failed to send text search request: url=%s, error=%v", searchURL, err)
		return nil, fmt.Errorf("places text search request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "search").Inc()
		logger.GlobalLogger.Errorf("Failed to read text search response body: url=%s, status=%s, error=%v", searchURL, resp.Status, err)
		return nil, fmt.Errorf("places text search failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "search").Inc()
		logger.GlobalLogger.Errorf("Text search failed: url=%s, status=%s, response=%s", searchURL, resp.Status, string(body))
		return nil, fmt.Errorf("places text search failed: %s", resp.Status)
	}

	var searchResp legacySearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "search").Inc()
		logger.GlobalLogger.Errorf("Failed to decode text search response: url=%s, response=%s, error=%v", searchURL, string(body), err)
		return nil, fmt.Errorf("places text search failed: could not decode response: %v", err)
	}

	// Non-OK statuses (ZERO_RESULTS, OVER_QUERY_LIMIT, ...) come back with
	// HTTP 200. They count as a successful empty search, not an error.
	if searchResp.Status != "OK" {
		logger.GlobalLogger.Warnf("Text search returned status %s, treating as no results: query=%q", searchResp.Status, query)
		return nil, nil
	}

	return searchResp.Results, nil
}

// FetchDetails looks up one place by ID. It never returns an error: any
// failure is logged and reported as absent so one bad lookup cannot abort a
// batch.
func (c *LegacyClient) FetchDetails(ctx context.Context, placeID string) (models.RawPlace, bool) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" || c.apiKey == "" {
		return nil, false
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)
	params.Set("fields", legacyDetailFields)
	detailsURL := c.baseURL + "/details/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", detailsURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create place details request: place_id=%s, error=%v", placeID, err)
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "details").Inc()
		logger.GlobalLogger.Errorf("Failed to send place details request: place_id=%s, error=%v", placeID, err)
		return nil, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "details").Inc()
		logger.GlobalLogger.Errorf("Failed to read place details response body: place_id=%s, status=%s, error=%v", placeID, resp.Status, err)
		return nil, false
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "details").Inc()
		logger.GlobalLogger.Errorf("Place details failed: place_id=%s, status=%s, response=%s", placeID, resp.Status, string(body))
		return nil, false
	}

	var detailsResp legacyDetailsResponse
	if err := json.Unmarshal(body, &detailsResp); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantLegacy, "details").Inc()
		logger.GlobalLogger.Errorf("Failed to decode place details response: place_id=%s, response=%s, error=%v", placeID, string(body), err)
		return nil, false
	}

	if detailsResp.Status != "OK" || detailsResp.Result == nil {
		logger.GlobalLogger.Warnf("Place details returned status %s: place_id=%s", detailsResp.Status, placeID)
		return nil, false
	}

	return detailsResp.Result, true
}
