package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/lib/pq"

	"tourism-dashboard/models"
	"tourism-dashboard/utils"
)

// PostgresReader loads the review table from a PostgreSQL `reviews` table.
// It is strictly read-only; the dashboard never writes review data.
type PostgresReader struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresReader opens a connection to PostgreSQL and verifies it with a
// retried ping before returning.
func NewPostgresReader(dsn string, logger *utils.Logger) (*PostgresReader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &PostgresReader{db: db, logger: logger}, nil
}

// Load fetches every review row ordered by id. The columns mirror the CSV
// header; latitude/longitude may be NULL for rows without a geocode. A
// failing query (missing table or column) is a *LoadError, same as a CSV
// schema mismatch.
func (pr *PostgresReader) Load() ([]*models.RawReview, error) {
	rows, err := pr.db.Query(`
		SELECT review, sentiment, area_type, district, destination, latitude, longitude
		FROM reviews
		ORDER BY id
	`)
	if err != nil {
		return nil, &LoadError{Source: "postgres/reviews", Err: err}
	}
	defer rows.Close()

	var reviews []*models.RawReview
	n := 0
	for rows.Next() {
		n++
		var text, sentiment, area, district, destination sql.NullString
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&text, &sentiment, &area, &district, &destination, &lat, &lon); err != nil {
			return nil, &LoadError{Source: "postgres/reviews", Err: err}
		}
		reviews = append(reviews, &models.RawReview{
			Row:         n,
			Text:        text.String,
			Sentiment:   sentiment.String,
			AreaType:    area.String,
			District:    district.String,
			Destination: destination.String,
			Latitude:    nullFloat(lat),
			Longitude:   nullFloat(lon),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "postgres/reviews", Err: err}
	}

	pr.logger.Debug("[postgres] Read %d rows", len(reviews))
	return reviews, nil
}

func (pr *PostgresReader) Close() error {
	return pr.db.Close()
}

func nullFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
