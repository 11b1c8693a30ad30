package transformers

import (
	"testing"

	"leadharvest/internal/models"
)

func TestPlacesLeadTransformer_Transform(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	place := models.RawPlace{
		"displayName":      map[string]interface{}{"text": "Café X"},
		"formattedAddress": "1 Main St",
		"rating":           4.5,
		"location":         map[string]interface{}{"latitude": 40.0, "longitude": -73.0},
	}

	lead, err := tr.Transform(place, nil)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if lead.Name != "Café X" {
		t.Errorf("Name = %q, want Café X", lead.Name)
	}
	if lead.Address != "1 Main St" {
		t.Errorf("Address = %q, want 1 Main St", lead.Address)
	}
	if lead.Rating == nil || *lead.Rating != 4.5 {
		t.Errorf("Rating = %v, want 4.5", lead.Rating)
	}
	if lead.Latitude == nil || *lead.Latitude != 40.0 {
		t.Errorf("Latitude = %v, want 40.0", lead.Latitude)
	}
	if lead.Longitude == nil || *lead.Longitude != -73.0 {
		t.Errorf("Longitude = %v, want -73.0", lead.Longitude)
	}
	if lead.Phone != nil {
		t.Errorf("Phone = %v, want absent", *lead.Phone)
	}
	if lead.Website != nil {
		t.Errorf("Website = %v, want absent", *lead.Website)
	}
	if lead.Category != nil {
		t.Errorf("Category = %v, want absent", *lead.Category)
	}
	if lead.ReviewsCount != nil {
		t.Errorf("ReviewsCount = %v, want absent", *lead.ReviewsCount)
	}
}

func TestPlacesLeadTransformer_FullRecord(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	place := models.RawPlace{
		"displayName":              map[string]interface{}{"text": "Joe's Diner"},
		"formattedAddress":         "2 Side St, Austin, TX",
		"internationalPhoneNumber": "+1 512-555-0100",
		"nationalPhoneNumber":      "(512) 555-0100",
		"websiteUri":               "https://joes.example.com",
		"rating":                   4.2,
		"userRatingCount":          float64(137),
		"types":                    []interface{}{"restaurant", "food"},
		"location":                 map[string]interface{}{"latitude": 30.27, "longitude": -97.74},
	}

	lead, err := tr.Transform(place, nil)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if lead.Phone == nil || *lead.Phone != "+1 512-555-0100" {
		t.Errorf("Phone = %v, want international format preferred", lead.Phone)
	}
	if lead.Website == nil || *lead.Website != "https://joes.example.com" {
		t.Errorf("Website = %v, want https://joes.example.com", lead.Website)
	}
	if lead.ReviewsCount == nil || *lead.ReviewsCount != 137 {
		t.Errorf("ReviewsCount = %v, want 137", lead.ReviewsCount)
	}
	if lead.Category == nil || *lead.Category != "restaurant, food" {
		t.Errorf("Category = %v, want restaurant, food", lead.Category)
	}
}

func TestPlacesLeadTransformer_PhoneFallsBackToNational(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	place := models.RawPlace{
		"displayName":         map[string]interface{}{"text": "Corner Shop"},
		"nationalPhoneNumber": "(512) 555-0199",
	}

	lead, err := tr.Transform(place, nil)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if lead.Phone == nil || *lead.Phone != "(512) 555-0199" {
		t.Errorf("Phone = %v, want national fallback", lead.Phone)
	}
}

func TestPlacesLeadTransformer_DisplayNameString(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	lead, err := tr.Transform(models.RawPlace{"displayName": "Plain Name"}, nil)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}
	if lead.Name != "Plain Name" {
		t.Errorf("Name = %q, want Plain Name", lead.Name)
	}
}

func TestPlacesLeadTransformer_EmptyRecord(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	lead, err := tr.Transform(models.RawPlace{}, nil)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if lead.Name != "" || lead.Address != "" {
		t.Errorf("Name/Address = %q/%q, want empty", lead.Name, lead.Address)
	}
	for name, absent := range map[string]bool{
		"Phone":        lead.Phone == nil,
		"Website":      lead.Website == nil,
		"Rating":       lead.Rating == nil,
		"ReviewsCount": lead.ReviewsCount == nil,
		"Category":     lead.Category == nil,
		"Latitude":     lead.Latitude == nil,
		"Longitude":    lead.Longitude == nil,
	} {
		if !absent {
			t.Errorf("%s should be absent for an empty record", name)
		}
	}
}

func TestPlacesLeadTransformer_MalformedFields(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	// Wrong-typed fields must map to absent, never panic.
	place := models.RawPlace{
		"displayName":      map[string]interface{}{"text": 42},
		"formattedAddress": 12345,
		"rating":           "four and a half",
		"userRatingCount":  "many",
		"types":            "restaurant",
		"location":         "nowhere",
	}

	lead, err := tr.Transform(place, nil)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}
	if lead.Address != "" {
		t.Errorf("Address = %q, want empty for malformed field", lead.Address)
	}
	if lead.Rating != nil || lead.ReviewsCount != nil || lead.Category != nil || lead.Latitude != nil {
		t.Error("malformed optional fields should map to absent")
	}
}

func TestPlacesLeadTransformer_NilRecord(t *testing.T) {
	tr := NewPlacesLeadTransformer()

	if _, err := tr.Transform(nil, nil); err == nil {
		t.Error("Transform expected error for nil place record")
	}
}

func TestJoinTypes(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
		isNil bool
	}{
		{"two types", []interface{}{"restaurant", "food"}, "restaurant, food", false},
		{"single type", []interface{}{"cafe"}, "cafe", false},
		{"empty list", []interface{}{}, "", true},
		{"absent", nil, "", true},
		{"non-list", "restaurant", "", true},
		{"non-string entries", []interface{}{1, 2}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinTypes(tt.input)
			if tt.isNil {
				if got != nil {
					t.Errorf("joinTypes(%v) = %q, want nil", tt.input, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("joinTypes(%v) = %v, want %q", tt.input, got, tt.want)
			}
		})
	}
}
