package ratings

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// FindExport returns the first CSV file in dir, or an error if there is
// none.
func FindExport(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no CSV file found in %s", dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// LoadCSV reads an IMDb ratings export. The export is Windows-1252
// encoded, so the file goes through a charmap decoder before the CSV
// reader. Rows with a missing or malformed date or title type are
// skipped; these are routine in real exports, not errors.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRecords(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
}

// ReadRecords parses ratings rows from r. The header row determines the
// column positions of "Date Rated" and "Title Type".
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	dateCol, typeCol := -1, -1
	for i, name := range header {
		switch name {
		case "Date Rated":
			dateCol = i
		case "Title Type":
			typeCol = i
		}
	}
	if dateCol == -1 || typeCol == -1 {
		return nil, fmt.Errorf("export is missing the Date Rated or Title Type column")
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if dateCol >= len(row) || typeCol >= len(row) {
			continue
		}
		rec, ok := makeRecord(row[dateCol], row[typeCol])
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// makeRecord validates and normalizes one raw row. It returns false for
// rows that should be skipped: empty fields, unparseable dates, and title
// types mapped to the exclusion sentinel.
func makeRecord(rawDate, rawType string) (Record, bool) {
	if rawDate == "" || rawType == "" {
		return Record{}, false
	}
	category, keep := NormalizeCategory(rawType)
	if !keep {
		return Record{}, false
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return Record{}, false
	}
	return Record{Date: date, Category: category}, true
}
