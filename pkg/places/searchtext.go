package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"leadharvest/internal/models"
	"leadharvest/pkg/logger"
	"leadharvest/pkg/metrics"
)

// defaultFieldMask restricts which place fields the server returns. Both
// phone formats are requested so normalization can prefer international and
// fall back to national.
const defaultFieldMask = "places.displayName,places.formattedAddress," +
	"places.internationalPhoneNumber,places.nationalPhoneNumber," +
	"places.websiteUri,places.rating,places.userRatingCount," +
	"places.types,places.location"

// TextSearchClient talks to the new Places API (places:searchText).
type TextSearchClient struct {
	apiKey     string
	baseURL    string
	fieldMask  string
	httpClient *http.Client
}

type textSearchRequest struct {
	TextQuery      string                 `json:"textQuery"`
	MaxResultCount int                    `json:"maxResultCount"`
	LanguageCode   string                 `json:"languageCode"`
	LocationBias   map[string]interface{} `json:"locationBias,omitempty"`
}

type textSearchResponse struct {
	Places []models.RawPlace `json:"places"`
}

func (c *TextSearchClient) Variant() string {
	return VariantNew
}

func (c *TextSearchClient) SearchText(ctx context.Context, query, location string, limit int) ([]models.RawPlace, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	reqBody := textSearchRequest{
		TextQuery:      buildSearchQuery(query, location),
		MaxResultCount: limit,
		LanguageCode:   "en",
	}
	if location != "" {
		reqBody.LocationBias = map[string]interface{}{"regionCode": "US"}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal text search request: %v", err)
	}

	searchURL := c.baseURL + ":searchText"
	req, err := http.NewRequestWithContext(ctx, "POST", searchURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create text search request: url=%s, error=%v", searchURL, err)
		return nil, fmt.Errorf("places text search request failed: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", c.fieldMask)

	logger.GlobalLogger.Printf("Searching places: query=%q", reqBody.TextQuery)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantNew, "search").Inc()
		logger.GlobalLogger.Errorf("Failed to send text search request: url=%s, error=%v", searchURL, err)
		return nil, fmt.Errorf("places text search request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantNew, "search").Inc()
		logger.GlobalLogger.Errorf("Failed to read text search response body: url=%s, status=%s, error=%v", searchURL, resp.Status, err)
		return nil, fmt.Errorf("places text search failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantNew, "search").Inc()
		logger.GlobalLogger.Errorf("Text search failed: url=%s, status=%s, response=%s", searchURL, resp.Status, string(body))
		return nil, fmt.Errorf("places text search failed: %s, response: %s", resp.Status, string(body))
	}

	var searchResp textSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(VariantNew, "search").Inc()
		logger.GlobalLogger.Errorf("Failed to decode text search response: url=%s, response=%s, error=%v", searchURL, string(body), err)
		return nil, fmt.Errorf("places text search failed: could not decode response: %v", err)
	}

	return searchResp.Places, nil
}

// FetchDetails is a no-op for the new API: phone and website arrive in the
// search response via the field mask.
func (c *TextSearchClient) FetchDetails(ctx context.Context, placeID string) (models.RawPlace, bool) {
	return nil, false
}
