package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"storelocator-api/internal/models"
)

// Source timestamps look like "12/8/2013 7:48:00 AM"; the time component
// is discarded after parsing.
const firstSeenLayout = "1/2/2006 3:04:05 PM"

var requiredColumns = []string{
	"Id", "StarbucksId", "Name", "OwnershipType", "City", "CountryCode",
	"PostalCode", "PhoneNumber", "TimezoneId", "Latitude", "Longitude", "FirstSeen",
}

// Repository holds the full dataset in memory. It is populated once by Load
// and read-only afterwards, so it is safe for concurrent use without locking.
type Repository struct {
	records []models.LocationRecord
}

// Load reads the source CSV and builds the in-memory repository. An
// unreadable file, a missing required column or a duplicate primary key
// fails the whole load; per-row anomalies in coordinates or timestamps are
// confined to the affected record.
func Load(path string) (*Repository, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open dataset: %w", err)
	}
	defer file.Close()

	return load(file)
}

func load(r io.Reader) (*Repository, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("repository: required column %q is missing", name)
		}
	}

	var records []models.LocationRecord
	seen := make(map[int]bool)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read row: %w", err)
		}

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, err
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("repository: duplicate record id %d", record.ID)
		}
		seen[record.ID] = true
		records = append(records, record)
	}

	return &Repository{records: records}, nil
}

func parseRow(row []string, columns map[string]int) (models.LocationRecord, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	id, err := strconv.Atoi(field("Id"))
	if err != nil {
		return models.LocationRecord{}, fmt.Errorf("repository: invalid record id %q: %w", field("Id"), err)
	}

	record := models.LocationRecord{
		ID:          id,
		StoreID:     field("StarbucksId"),
		Name:        field("Name"),
		Ownership:   models.ParseOwnershipType(field("OwnershipType")),
		City:        field("City"),
		CountryCode: field("CountryCode"),
		PostalCode:  field("PostalCode"),
		PhoneNumber: field("PhoneNumber"),
		TimezoneID:  field("TimezoneId"),
	}

	lat, latErr := strconv.ParseFloat(field("Latitude"), 64)
	lon, lonErr := strconv.ParseFloat(field("Longitude"), 64)
	if latErr == nil && lonErr == nil {
		coords := models.Coordinates{Latitude: lat, Longitude: lon}
		if coords.InRange() {
			record.Coordinates = &coords
		}
	}

	if ts, err := time.Parse(firstSeenLayout, field("FirstSeen")); err == nil {
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		record.FirstSeen = &day
	}

	return record, nil
}

// AllRecords returns every record in original source order. Callers must
// treat the returned slice as read-only.
func (r *Repository) AllRecords() []models.LocationRecord {
	return r.records
}

// Len returns the number of records in the repository.
func (r *Repository) Len() int {
	return len(r.records)
}

// TimezoneIDs returns the distinct timezone identifiers present in the
// dataset, in order of first occurrence.
func (r *Repository) TimezoneIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, record := range r.records {
		if record.TimezoneID == "" || seen[record.TimezoneID] {
			continue
		}
		seen[record.TimezoneID] = true
		ids = append(ids, record.TimezoneID)
	}
	return ids
}
