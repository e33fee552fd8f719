package storage

import (
	"encoding/csv"
	"os"
	"strings"

	"tourism-dashboard/models"
	"tourism-dashboard/utils"
)

// Expected header names, compared after trimming and lowercasing.
var csvColumns = []string{
	"review", "sentiment", "area type", "district", "destination", "latitude", "longitude",
}

// CSVReader loads the review table from a delimited file. The file path is
// fixed and caller-supplied; no discovery is attempted.
type CSVReader struct {
	path   string
	logger *utils.Logger
}

// NewCSVReader creates a CSVReader for the given path.
func NewCSVReader(path string, logger *utils.Logger) *CSVReader {
	return &CSVReader{path: path, logger: logger}
}

// Load reads the whole file into raw review rows. A missing file, a read
// failure, or a missing required column returns a *LoadError.
func (r *CSVReader) Load() ([]*models.RawReview, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, &LoadError{Source: r.path, Err: err}
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, &LoadError{Source: r.path, Err: err}
	}

	idx, missing := columnIndex(header)
	if missing != "" {
		return nil, &LoadError{Source: r.path, Column: missing}
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &LoadError{Source: r.path, Err: err}
	}

	reviews := make([]*models.RawReview, 0, len(records))
	for i, rec := range records {
		reviews = append(reviews, &models.RawReview{
			Row:         i + 2, // header is row 1
			Text:        rec[idx["review"]],
			Sentiment:   rec[idx["sentiment"]],
			AreaType:    rec[idx["area type"]],
			District:    rec[idx["district"]],
			Destination: rec[idx["destination"]],
			Latitude:    rec[idx["latitude"]],
			Longitude:   rec[idx["longitude"]],
		})
	}

	r.logger.Debug("[csv] Read %d rows from %s", len(reviews), r.path)
	return reviews, nil
}

// Close satisfies ReviewSource; the file handle does not outlive Load.
func (r *CSVReader) Close() error { return nil }

// columnIndex maps expected column names to their position in the header,
// tolerating surrounding whitespace and case differences. It returns the
// first expected column that could not be found, or "".
func columnIndex(header []string) (map[string]int, string) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}

	idx := make(map[string]int, len(csvColumns))
	for _, col := range csvColumns {
		i, ok := pos[col]
		if !ok {
			return nil, col
		}
		idx[col] = i
	}
	return idx, ""
}
