package places

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"leadharvest/internal/errors"
	"leadharvest/internal/models"
	"leadharvest/pkg/config"
)

// Variant names accepted in configuration.
const (
	VariantNew    = "new"
	VariantLegacy = "legacy"
)

const (
	defaultNewBaseURL    = "https://places.googleapis.com/v1/places"
	defaultLegacyBaseURL = "https://maps.googleapis.com/maps/api/place"

	// maxPageSize is the provider's per-request result limit. Requests asking
	// for more are clamped before being sent; the scraper's own overall cap is
	// applied independently during accumulation.
	maxPageSize = 20
)

// Client is one provider API variant: a text search plus an optional
// per-place detail lookup. FetchDetails reports absent (nil, false) for
// variants that carry phone/website in the search response itself.
type Client interface {
	SearchText(ctx context.Context, query, location string, limit int) ([]models.RawPlace, error)
	FetchDetails(ctx context.Context, placeID string) (models.RawPlace, bool)
	Variant() string
}

// NewClient constructs the client for the configured variant. A missing API
// key is fatal here for the new-API variant; the legacy variant degrades to
// logged empty results per call instead.
func NewClient(cfg *config.Config) (Client, error) {
	timeout := time.Duration(cfg.Places.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	switch cfg.Places.Variant {
	case VariantLegacy:
		baseURL := cfg.Places.BaseURL
		if baseURL == "" {
			baseURL = defaultLegacyBaseURL
		}
		return &LegacyClient{
			apiKey:     cfg.Places.APIKey,
			baseURL:    baseURL,
			httpClient: httpClient,
		}, nil
	case VariantNew, "":
		if cfg.Places.APIKey == "" {
			return nil, errors.NewAppError(
				"places API key is not configured",
				errors.MsgMissingCredential,
				errors.ErrCodeMissingCredential,
				http.StatusInternalServerError,
				nil,
			)
		}
		baseURL := cfg.Places.BaseURL
		if baseURL == "" {
			baseURL = defaultNewBaseURL
		}
		return &TextSearchClient{
			apiKey:     cfg.Places.APIKey,
			baseURL:    baseURL,
			fieldMask:  defaultFieldMask,
			httpClient: httpClient,
		}, nil
	default:
		return nil, fmt.Errorf("unknown places variant: %q", cfg.Places.Variant)
	}
}

// buildSearchQuery combines the free-text query with an optional location.
func buildSearchQuery(query, location string) string {
	if location != "" {
		return fmt.Sprintf("%s in %s", query, location)
	}
	return query
}
