package validators

import (
	"testing"

	"leadharvest/internal/errors"
	"leadharvest/internal/models"
)

func TestScrapeValidator_ValidateScrape(t *testing.T) {
	v := NewScrapeValidator()

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"valid query", "coffee shops", false},
		{"query with surrounding space", "  plumbers  ", false},
		{"empty query", "", true},
		{"whitespace only", "   \t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateScrape(&models.ScrapeRequest{Query: tt.query})
			if tt.wantErr && err == nil {
				t.Errorf("ValidateScrape(%q) expected error", tt.query)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateScrape(%q) unexpected error: %v", tt.query, err)
			}
			if tt.wantErr {
				appErr, ok := err.(*errors.AppError)
				if !ok {
					t.Fatalf("error type = %T, want *errors.AppError", err)
				}
				if appErr.Code != errors.ErrCodeInvalidQuery {
					t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrCodeInvalidQuery)
				}
				if appErr.HTTPStatus != 400 {
					t.Errorf("HTTP status = %d, want 400", appErr.HTTPStatus)
				}
			}
		})
	}
}
