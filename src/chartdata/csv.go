package chartdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/diaanaelena/demo-charts/src/chartlog"
)

// ReadRows parses CSV input into rows keyed by trimmed header names.
// Blank lines are skipped, numeric-looking cells become float64, everything
// else stays a string. Short records simply omit the missing columns.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if blankRecord(rec) {
			continue
		}
		row := Row{}
		for i, cell := range rec {
			if i >= len(header) {
				break
			}
			row[header[i]] = typeCell(strings.TrimSpace(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRowsFile reads and parses one CSV file.
func ReadRowsFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	chartlog.Debugf("parsed %d rows from %s", len(rows), path)
	return rows, nil
}

func blankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// typeCell mirrors dynamic typing of the upload layer: numbers become
// float64, empty cells become nil.
func typeCell(s string) interface{} {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
