package chartdata

import "github.com/diaanaelena/demo-charts/src/chartlog"

// LoadMarkersFile reads the fund filings upload into marker points.
func LoadMarkersFile(path string) ([]Point, error) {
	rows, err := ReadRowsFile(path)
	if err != nil {
		return nil, err
	}
	pts := NormalizeMarkers(rows)
	chartlog.Infof("loaded %d marker rows from %s", len(pts), path)
	return pts, nil
}

// LoadSeriesFile reads the composite/derived upload into series points.
// Missing-value tokens become nulls before normalization.
func LoadSeriesFile(path string) ([]SeriesPoint, error) {
	rows, err := ReadRowsFile(path)
	if err != nil {
		return nil, err
	}
	pts := NormalizeSeries(CleanNulls(rows))
	chartlog.Infof("loaded %d series rows from %s", len(pts), path)
	return pts, nil
}
