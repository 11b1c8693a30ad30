package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"leadharvest/internal/models"
)

// Header columns in Lead field order. Absent optional fields render as empty
// cells, never a "None" or "null" literal.
var csvHeader = []string{
	"name", "address", "phone", "website", "rating",
	"reviews_count", "category", "latitude", "longitude",
}

// CSVWriter saves leads to a CSV file on disk.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write saves all leads to the CSV file, creating the output directory if it
// does not exist.
func (w *CSVWriter) Write(leads []models.Lead) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	return WriteTo(file, leads)
}

// WriteTo streams the leads as CSV, header first. Used both for file export
// and for the /scrape/export response body.
func WriteTo(out io.Writer, leads []models.Lead) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	for _, lead := range leads {
		if err := writer.Write(leadRecord(lead)); err != nil {
			return fmt.Errorf("csv write error: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func leadRecord(l models.Lead) []string {
	return []string{
		l.Name,
		l.Address,
		stringCell(l.Phone),
		stringCell(l.Website),
		floatCell(l.Rating),
		intCell(l.ReviewsCount),
		stringCell(l.Category),
		floatCell(l.Latitude),
		floatCell(l.Longitude),
	}
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
