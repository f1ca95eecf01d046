package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"spacex-dashboard/models"
)

// Column headers of the launch CSV.
const (
	ColumnSite            = "Launch Site"
	ColumnPayload         = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnFlightNumber    = "Flight Number"
	ColumnBoosterVersion  = "Booster Version"
)

var requiredColumns = []string{ColumnSite, ColumnPayload, ColumnClass, ColumnBoosterCategory}

// CSVReader loads the launch dataset from a delimited file.
type CSVReader struct {
	Path string
}

// NewCSVReader creates a CSVReader for path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{Path: path}
}

// Describe names the source for log lines.
func (c *CSVReader) Describe() string { return "csv " + c.Path }

// Load reads the whole file once. Any malformed row aborts the load.
func (c *CSVReader) Load(ctx context.Context) (*models.Dataset, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, loadErr(c.Path, "open file", err)
	}
	defer f.Close()

	return ReadCSV(ctx, c.Path, f)
}

// ReadCSV parses launch records from r. source only labels errors.
func ReadCSV(ctx context.Context, source string, r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, loadErr(source, "file is empty", nil)
	}
	if err != nil {
		return nil, loadErr(source, "read header", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, loadErr(source, "validate header", err)
	}

	var records []models.LaunchRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, loadErr(source, "cancelled", err)
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, loadErr(source, "read row", err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := cols.record(row)
		if err != nil {
			return nil, loadErr(source, fmt.Sprintf("line %d", line), err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, loadErr(source, "no launch records", nil)
	}
	return models.NewDataset(records), nil
}

// columnIndex maps the known headers to their positions; optional columns are -1.
type columnIndex struct {
	site, payload, class, category int
	flight, version                int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	optional := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	return columnIndex{
		site:     pos[ColumnSite],
		payload:  pos[ColumnPayload],
		class:    pos[ColumnClass],
		category: pos[ColumnBoosterCategory],
		flight:   optional(ColumnFlightNumber),
		version:  optional(ColumnBoosterVersion),
	}, nil
}

func (c columnIndex) record(row []string) (models.LaunchRecord, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	site := field(c.site)
	if site == "" {
		return models.LaunchRecord{}, fmt.Errorf("empty %q", ColumnSite)
	}
	category := field(c.category)
	if category == "" {
		return models.LaunchRecord{}, fmt.Errorf("empty %q", ColumnBoosterCategory)
	}

	payload, err := parsePayload(field(c.payload))
	if err != nil {
		return models.LaunchRecord{}, err
	}
	class, err := parseClass(field(c.class))
	if err != nil {
		return models.LaunchRecord{}, err
	}

	rec := models.LaunchRecord{
		Site:            site,
		PayloadMassKg:   payload,
		Class:           class,
		BoosterVersion:  field(c.version),
		BoosterCategory: category,
	}
	if raw := field(c.flight); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.LaunchRecord{}, fmt.Errorf("%q: %q is not an integer", ColumnFlightNumber, raw)
		}
		rec.FlightNumber = n
	}
	return rec, nil
}

func parsePayload(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %q is not a number", ColumnPayload, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q: %v is negative", ColumnPayload, v)
	}
	return v, nil
}

// parseClass accepts 0/1, also written as 0.0/1.0.
func parseClass(raw string) (int, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || (v != 0 && v != 1) {
		return 0, fmt.Errorf("%q: %q is not 0 or 1", ColumnClass, raw)
	}
	return int(v), nil
}
