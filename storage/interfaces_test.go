package storage

import (
	"strings"
	"testing"

	"spacex-dashboard/config"
)

func TestNewSource(t *testing.T) {
	cfg := &config.Config{DataSource: config.SourceCSV, DataPath: "a.csv"}
	src, err := NewSource(cfg)
	if err != nil {
		t.Fatalf("NewSource csv: %v", err)
	}
	if _, ok := src.(*CSVReader); !ok {
		t.Errorf("expected *CSVReader, got %T", src)
	}

	cfg = &config.Config{DataSource: config.SourcePostgres, PostgresTable: "spacex_launches"}
	src, err = NewSource(cfg)
	if err != nil {
		t.Fatalf("NewSource postgres: %v", err)
	}
	if !strings.Contains(src.Describe(), "spacex_launches") {
		t.Errorf("Describe: got %q", src.Describe())
	}

	if _, err := NewSource(&config.Config{DataSource: "s3"}); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestPostgresSelectQuery(t *testing.T) {
	q, err := NewPostgresReader("", "public.spacex_launches").selectQuery()
	if err != nil {
		t.Fatalf("selectQuery: %v", err)
	}
	if !strings.Contains(q, "FROM public.spacex_launches") {
		t.Errorf("query does not target table: %s", q)
	}

	if _, err := NewPostgresReader("", "launches; DROP TABLE x").selectQuery(); err == nil {
		t.Error("expected invalid table name to be rejected")
	}
}
