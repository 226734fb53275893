package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"autoria-scraper/models"
	"autoria-scraper/utils"
)

// csvHeader keeps the site-facing labels, including the "Tittle" spelling existing
// consumers of autoria.csv expect. The index column is unlabeled.
var csvHeader = []string{"", "Tittle", "Phone Number", "Description"}

// CSVWriter handles writing scraped records to a CSV file
type CSVWriter struct {
	filePath string
	logger   utils.Reporter
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger utils.Reporter) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// Save implements RecordSink
func (w *CSVWriter) Save(_ models.Run, records []models.ListingRecord) error {
	return w.Write(records)
}

// Write replaces the CSV file with a header row and one 1-indexed row per record
func (w *CSVWriter) Write(records []models.ListingRecord) error {
	w.logger.Info("Save data to %s", w.filePath)

	// Ensure output directory exists
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1),
			r.Title,
			r.PhoneNumber,
			r.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	w.logger.Info("Records written to: %s (%d rows)", w.filePath, len(records))
	return nil
}
