package transformers

import (
	"leadharvest/internal/models"
)

// LeadTransformer maps one raw place record (plus an optional details record)
// into a canonical Lead. Implementations are variant-specific and total: a
// missing or malformed source field becomes an absent Lead field, never a
// zero value or a panic.
type LeadTransformer interface {
	Transform(place models.RawPlace, details models.RawPlace) (*models.Lead, error)
}
