package validators

import (
	"leadharvest/internal/models"
)

type ScrapeValidator interface {
	ValidateScrape(req *models.ScrapeRequest) error
}
