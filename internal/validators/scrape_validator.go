package validators

import (
	"net/http"
	"strings"

	"leadharvest/internal/errors"
	"leadharvest/internal/models"
)

type scrapeValidator struct{}

func NewScrapeValidator() ScrapeValidator {
	return &scrapeValidator{}
}

func (v *scrapeValidator) ValidateScrape(req *models.ScrapeRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return errors.NewAppError(
			"search query cannot be empty",
			errors.MsgInvalidQuery,
			errors.ErrCodeInvalidQuery,
			http.StatusBadRequest,
			nil,
		)
	}
	return nil
}
