package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadDatasets(t *testing.T) {
	dir := t.TempDir()
	scatter := writeFile(t, dir, "filings.csv",
		"date,fund_price,equity_type\n01/01/2021,100,Common\n02/06/2021,110,Preferred\n")
	lines := writeFile(t, dir, "composite.csv",
		"date,composite_price,derived_price\n01/01/2021,50,?\n01/05/2021,60,N/A\n")

	markers, series, err := loadDatasets(scatter, lines)
	if err != nil {
		t.Fatalf("loadDatasets: %v", err)
	}
	if len(markers) != 2 || len(series) != 2 {
		t.Fatalf("got %d markers, %d series rows", len(markers), len(series))
	}
	if markers[0].FundPrice == nil || *markers[0].FundPrice != 100 {
		t.Fatalf("marker price mangled: %+v", markers[0])
	}
	if series[0].DerivedPrice != nil {
		t.Fatalf("? token should normalize to nil, got %v", *series[0].DerivedPrice)
	}
	if series[1].CompositePrice == nil || *series[1].CompositePrice != 60 {
		t.Fatalf("composite price mangled: %+v", series[1])
	}
}

func TestLoadDatasetsMissingFile(t *testing.T) {
	dir := t.TempDir()
	scatter := writeFile(t, dir, "filings.csv", "date,fund_price,equity_type\n")
	if _, _, err := loadDatasets(scatter, filepath.Join(dir, "absent.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
