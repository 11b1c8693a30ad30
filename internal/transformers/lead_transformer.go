package transformers

import (
	"fmt"

	"leadharvest/internal/models"
)

type placesLeadTransformer struct{}

// NewPlacesLeadTransformer maps place records shaped by the new Places API
// (places:searchText). Phone and website arrive in the search record itself,
// so the details argument is ignored.
func NewPlacesLeadTransformer() LeadTransformer {
	return &placesLeadTransformer{}
}

func (t *placesLeadTransformer) Transform(place models.RawPlace, details models.RawPlace) (*models.Lead, error) {
	if place == nil {
		return nil, fmt.Errorf("place record is not a JSON object")
	}

	lead := &models.Lead{}

	// displayName is normally {text, languageCode}; some responses carry a
	// bare string instead.
	switch name := place["displayName"].(type) {
	case map[string]interface{}:
		lead.Name = getString(name, "text")
	case string:
		lead.Name = name
	case nil:
	default:
		lead.Name = fmt.Sprintf("%v", name)
	}

	lead.Address = getString(place, "formattedAddress")

	lead.Phone = getOptionalString(place, "internationalPhoneNumber")
	if lead.Phone == nil {
		lead.Phone = getOptionalString(place, "nationalPhoneNumber")
	}
	lead.Website = getOptionalString(place, "websiteUri")

	lead.Rating = getOptionalFloat(place, "rating")
	lead.ReviewsCount = getOptionalInt(place, "userRatingCount")
	lead.Category = joinTypes(place["types"])
	lead.Latitude = getOptionalFloat(place, "location.latitude")
	lead.Longitude = getOptionalFloat(place, "location.longitude")

	return lead, nil
}
