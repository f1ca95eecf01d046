package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"regexp"

	_ "github.com/lib/pq"

	"spacex-dashboard/models"
)

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// PostgresReader loads the launch dataset from a PostgreSQL table. It only reads.
type PostgresReader struct {
	dsn   string
	table string
}

// NewPostgresReader creates a reader for table using the lib/pq dsn.
func NewPostgresReader(dsn, table string) *PostgresReader {
	return &PostgresReader{dsn: dsn, table: table}
}

// Describe names the source for log lines without leaking credentials.
func (pr *PostgresReader) Describe() string { return "postgres table " + pr.table }

// selectQuery returns the SELECT for the configured table.
func (pr *PostgresReader) selectQuery() (string, error) {
	if !tableNameRegexp.MatchString(pr.table) {
		return "", fmt.Errorf("invalid table name %q", pr.table)
	}
	return fmt.Sprintf(`
		SELECT COALESCE(flight_number, 0),
		       launch_site,
		       payload_mass_kg,
		       class,
		       COALESCE(booster_version, ''),
		       booster_version_category
		FROM %s
		ORDER BY id
	`, pr.table), nil
}

// Load opens a connection, pings once and reads every row.
func (pr *PostgresReader) Load(ctx context.Context) (*models.Dataset, error) {
	source := pr.Describe()

	query, err := pr.selectQuery()
	if err != nil {
		return nil, loadErr(source, "build query", err)
	}

	db, err := sql.Open("postgres", pr.dsn)
	if err != nil {
		return nil, loadErr(source, "open", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, loadErr(source, "ping", err)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, loadErr(source, "query", err)
	}
	defer rows.Close()

	var records []models.LaunchRecord
	for rows.Next() {
		var rec models.LaunchRecord
		if err := rows.Scan(
			&rec.FlightNumber, &rec.Site, &rec.PayloadMassKg,
			&rec.Class, &rec.BoosterVersion, &rec.BoosterCategory,
		); err != nil {
			return nil, loadErr(source, "scan row", err)
		}
		if err := validateRecord(rec); err != nil {
			return nil, loadErr(source, fmt.Sprintf("row %d", len(records)+1), err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, loadErr(source, "iterate rows", err)
	}

	if len(records) == 0 {
		return nil, loadErr(source, "no launch records", nil)
	}
	return models.NewDataset(records), nil
}

func validateRecord(rec models.LaunchRecord) error {
	switch {
	case rec.Site == "":
		return fmt.Errorf("empty launch_site")
	case rec.BoosterCategory == "":
		return fmt.Errorf("empty booster_version_category")
	case math.IsNaN(rec.PayloadMassKg) || math.IsInf(rec.PayloadMassKg, 0):
		return fmt.Errorf("payload_mass_kg %v is not a finite number", rec.PayloadMassKg)
	case rec.PayloadMassKg < 0:
		return fmt.Errorf("payload_mass_kg %v is negative", rec.PayloadMassKg)
	case rec.Class != 0 && rec.Class != 1:
		return fmt.Errorf("class %d is not 0 or 1", rec.Class)
	}
	return nil
}
