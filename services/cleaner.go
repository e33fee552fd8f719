package services

import (
	"strconv"
	"strings"
	"unicode"

	"tourism-dashboard/models"
	"tourism-dashboard/utils"
)

// Cleaner transforms raw source rows into normalized Reviews.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean normalizes raw rows: the four categorical columns are trimmed and
// title-cased, review text is kept as a plain string (an empty cell stays
// ""), and the optional coordinates are parsed. A row counts as geocoded
// only when BOTH latitude and longitude parse; a present-but-unparsable
// coordinate is treated the same as a missing one.
func (c *Cleaner) Clean(raw []*models.RawReview) []*models.Review {
	result := make([]*models.Review, 0, len(raw))
	geocoded := 0

	for _, r := range raw {
		review := &models.Review{
			Text:        r.Text,
			Sentiment:   TitleCase(strings.TrimSpace(r.Sentiment)),
			AreaType:    TitleCase(strings.TrimSpace(r.AreaType)),
			District:    TitleCase(strings.TrimSpace(r.District)),
			Destination: TitleCase(strings.TrimSpace(r.Destination)),
		}

		lat, latOK := parseCoordinate(r.Latitude)
		lon, lonOK := parseCoordinate(r.Longitude)
		if latOK && lonOK {
			review.Latitude = lat
			review.Longitude = lon
			review.HasGeo = true
			geocoded++
		} else if latOK != lonOK {
			c.logger.Debug("[cleaner] Row %d has only one coordinate, treating as not geocoded", r.Row)
		}

		result = append(result, review)
	}

	c.logger.Info("[cleaner] Normalized %d rows (%d geocoded)", len(result), geocoded)
	return result
}

func parseCoordinate(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TitleCase uppercases the first letter of every word and lowercases the
// rest, with any non-letter rune acting as a word boundary. Category values
// are compared only in this form throughout the pipeline.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
		} else {
			b.WriteRune(r)
			inWord = false
		}
	}
	return b.String()
}
