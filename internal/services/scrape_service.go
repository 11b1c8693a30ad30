package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"leadharvest/internal/models"
	"leadharvest/internal/transformers"
	"leadharvest/internal/validators"
	"leadharvest/pkg/logger"
	"leadharvest/pkg/metrics"
	"leadharvest/pkg/places"
)

const (
	// DefaultMaxResults applies when the caller sends no maxResults.
	DefaultMaxResults = 20
	// HardResultCap bounds one scrape regardless of what the caller asks for
	// or how much the provider returns.
	HardResultCap = 200

	defaultPace = 100 * time.Millisecond
)

// ScrapeService runs one scrape end to end: validate, search, enrich
// (legacy variant), normalize, pace. Everything inside one call is
// sequential; detail lookups must finish before their place can be
// normalized, and the provider quota is worth more than latency here.
type ScrapeService struct {
	client      places.Client
	transformer transformers.LeadTransformer
	validator   validators.ScrapeValidator
	pacer       *rate.Limiter
	resultCap   int
}

// NewScrapeService wires the variant-specific client and transformer chosen
// at construction. pacer throttles per-result processing; pass a limiter
// with rate.Inf in tests to avoid wall-clock delays.
func NewScrapeService(
	client places.Client,
	transformer transformers.LeadTransformer,
	validator validators.ScrapeValidator,
	pacer *rate.Limiter,
	resultCap int,
) *ScrapeService {
	if pacer == nil {
		pacer = rate.NewLimiter(rate.Every(defaultPace), 1)
	}
	if resultCap <= 0 || resultCap > HardResultCap {
		resultCap = HardResultCap
	}
	return &ScrapeService{
		client:      client,
		transformer: transformer,
		validator:   validator,
		pacer:       pacer,
		resultCap:   resultCap,
	}
}

// ScrapeLeads returns normalized leads in provider response order. Per-item
// failures (one bad record, one failed detail lookup) are absorbed and
// logged; only validation and search-level errors reach the caller.
func (s *ScrapeService) ScrapeLeads(ctx context.Context, query, location string, maxResults int) ([]models.Lead, error) {
	req := &models.ScrapeRequest{Query: query, Location: location, MaxResults: maxResults}
	if err := s.validator.ValidateScrape(req); err != nil {
		return nil, err
	}

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > s.resultCap {
		maxResults = s.resultCap
	}

	variant := s.client.Variant()
	start := time.Now()
	logger.GlobalLogger.Printf("Starting scrape: query=%q, location=%q, max_results=%d, variant=%s",
		query, location, maxResults, variant)

	rawPlaces, err := s.client.SearchText(ctx, query, location, maxResults)
	if err != nil {
		metrics.ScrapesTotal.WithLabelValues(variant, "error").Inc()
		return nil, err
	}

	leads := make([]models.Lead, 0, len(rawPlaces))
	for i, place := range rawPlaces {
		if len(leads) >= maxResults {
			break
		}
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				logger.GlobalLogger.Warnf("Pacing interrupted, stopping scrape early: %v", err)
				break
			}
		}

		var details models.RawPlace
		if placeID := getPlaceID(place); placeID != "" {
			details, _ = s.client.FetchDetails(ctx, placeID)
		}

		lead, err := s.transformer.Transform(place, details)
		if err != nil {
			metrics.MalformedRecordsTotal.Inc()
			logger.GlobalLogger.Errorf("Skipping malformed place record %d/%d: %v", i+1, len(rawPlaces), err)
			continue
		}

		leads = append(leads, *lead)
		logger.GlobalLogger.Debugf("Processed place %d/%d", i+1, len(rawPlaces))
	}

	metrics.ScrapesTotal.WithLabelValues(variant, "success").Inc()
	metrics.LeadsScrapedTotal.Add(float64(len(leads)))
	metrics.ScrapeDuration.Observe(time.Since(start).Seconds())
	logger.GlobalLogger.Printf("Scrape completed: query=%q, leads=%d, duration=%v", query, len(leads), time.Since(start))

	return leads, nil
}

// getPlaceID reads the legacy search result's place identifier. New-API
// records carry no place_id key, so detail lookups are never attempted for
// them.
func getPlaceID(place models.RawPlace) string {
	if place == nil {
		return ""
	}
	if id, ok := place["place_id"].(string); ok {
		return id
	}
	return ""
}
