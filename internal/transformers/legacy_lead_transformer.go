package transformers

import (
	"fmt"

	"leadharvest/internal/models"
)

type legacyLeadTransformer struct{}

// NewLegacyLeadTransformer maps place records shaped by the legacy Text
// Search API. Phone and website exist only in the Details response, so they
// stay absent when no details record was fetched. Rating and review count
// always come from the search record, never from details.
func NewLegacyLeadTransformer() LeadTransformer {
	return &legacyLeadTransformer{}
}

func (t *legacyLeadTransformer) Transform(place models.RawPlace, details models.RawPlace) (*models.Lead, error) {
	if place == nil {
		return nil, fmt.Errorf("place record is not a JSON object")
	}

	lead := &models.Lead{
		Name:    getString(place, "name"),
		Address: getString(place, "formatted_address"),
	}

	lead.Rating = getOptionalFloat(place, "rating")
	lead.ReviewsCount = getOptionalInt(place, "user_ratings_total")
	lead.Category = joinTypes(place["types"])
	lead.Latitude = getOptionalFloat(place, "geometry.location.lat")
	lead.Longitude = getOptionalFloat(place, "geometry.location.lng")

	if details != nil {
		lead.Phone = getOptionalString(details, "formatted_phone_number")
		if lead.Phone == nil {
			lead.Phone = getOptionalString(details, "international_phone_number")
		}
		lead.Website = getOptionalString(details, "website")
	}

	return lead, nil
}
