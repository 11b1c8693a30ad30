package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"leadharvest/internal/models"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }

func TestWriteTo_RoundTrip(t *testing.T) {
	leads := []models.Lead{
		{
			Name:         "Café X",
			Address:      "1 Main St, New York, NY",
			Phone:        strPtr("+1 212-555-0100"),
			Website:      strPtr("https://cafex.example.com"),
			Rating:       floatPtr(4.5),
			ReviewsCount: intPtr(87),
			Category:     strPtr("restaurant, food"),
			Latitude:     floatPtr(40.0),
			Longitude:    floatPtr(-73.0),
		},
		{
			Name:    "No Data Deli",
			Address: "",
		},
	}

	var buf bytes.Buffer
	if err := WriteTo(&buf, leads); err != nil {
		t.Fatalf("WriteTo returned unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to re-read CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2 leads", len(records))
	}

	wantHeader := []string{"name", "address", "phone", "website", "rating", "reviews_count", "category", "latitude", "longitude"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("header = %v, want %v", records[0], wantHeader)
	}

	first := records[1]
	if first[0] != "Café X" || first[1] != "1 Main St, New York, NY" {
		t.Errorf("name/address round-trip failed: %v", first[:2])
	}
	if first[2] != "+1 212-555-0100" || first[4] != "4.5" || first[5] != "87" {
		t.Errorf("optional cells = %v, want formatted values", first)
	}
	if first[6] != "restaurant, food" {
		t.Errorf("category cell = %q, want restaurant, food", first[6])
	}

	// Absent optionals render as empty cells, never "None" or "null".
	second := records[2]
	for i := 2; i < len(second); i++ {
		if second[i] != "" {
			t.Errorf("cell %d = %q, want empty for absent field", i, second[i])
		}
	}
}

func TestWriteTo_EmptyLeadList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, nil); err != nil {
		t.Fatalf("WriteTo returned unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to re-read CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d rows, want header only", len(records))
	}
}

func TestCSVWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "leads.csv")
	w := NewCSVWriter(path)

	leads := []models.Lead{{Name: "Shop", Address: "4 Elm St"}}
	if err := w.Write(leads); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !bytes.Contains(data, []byte("Shop,4 Elm St")) {
		t.Errorf("output file missing lead row: %s", data)
	}
}
