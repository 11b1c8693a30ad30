package models

// RawPlace is one provider place object as decoded JSON. Its shape depends on
// the API variant ("new" Places API vs legacy Text Search/Details).
type RawPlace map[string]interface{}

// Lead is the canonical business record produced from one search result.
// Optional fields are pointers so a value the provider never sent stays
// distinguishable from a zero or empty string.
type Lead struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        *string  `json:"phone,omitempty"`
	Website      *string  `json:"website,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewsCount *int     `json:"reviews_count,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// ScrapeRequest is the body of POST /scrape and POST /scrape/export.
type ScrapeRequest struct {
	Query      string `json:"query" binding:"required"`
	Location   string `json:"location"`
	MaxResults int    `json:"maxResults"`
}

type ScrapeStats struct {
	Total       int `json:"total"`
	WithPhone   int `json:"with_phone"`
	WithWebsite int `json:"with_website"`
}

type ScrapeResponse struct {
	Success bool        `json:"success"`
	Leads   []Lead      `json:"leads"`
	Stats   ScrapeStats `json:"stats"`
}
