package models

// Canonical sentiment labels after title-case normalization.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Canonical area-type labels after title-case normalization.
const (
	AreaRural = "Rural"
	AreaUrban = "Urban"
)

// RawReview holds one unprocessed row exactly as it came out of the source
// (CSV cell strings or stringified database columns), before any cleaning.
type RawReview struct {
	Row         int // 1-based source row number, for log messages
	Text        string
	Sentiment   string
	AreaType    string
	District    string
	Destination string
	Latitude    string
	Longitude   string
}

// Review is the cleaned, normalized record the whole pipeline works on.
// Immutable once the cleaner has produced it.
type Review struct {
	Text        string  `json:"text"`
	Sentiment   string  `json:"sentiment"`
	AreaType    string  `json:"area_type"`
	District    string  `json:"district"`
	Destination string  `json:"destination"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	HasGeo      bool    `json:"has_geo"`
}

// SentimentScore maps a normalized sentiment label to its numeric score
// (Negative→0, Neutral→1, Positive→2). The second return is false for any
// label outside the fixed three-way mapping; such rows must be excluded from
// score-based aggregation, never silently scored zero.
func SentimentScore(sentiment string) (int, bool) {
	switch sentiment {
	case SentimentNegative:
		return 0, true
	case SentimentNeutral:
		return 1, true
	case SentimentPositive:
		return 2, true
	}
	return 0, false
}

// CategoryCount is one row of a category-count table.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DestinationRank is one row of the rural-positive destination ranking.
type DestinationRank struct {
	Destination   string `json:"destination"`
	PositiveCount int    `json:"positive_count"`
}

// DistrictScore is one row of the district-by-average-sentiment table.
type DistrictScore struct {
	District     string  `json:"district"`
	AverageScore float64 `json:"average_score"`
	ReviewCount  int     `json:"review_count"`
}

// WordFreq is one entry of a per-sentiment term-frequency table.
type WordFreq struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// SentimentCorpus is the concatenated review text for one sentiment bucket
// together with its ranked term frequencies.
type SentimentCorpus struct {
	Sentiment string     `json:"sentiment"`
	Text      string     `json:"-"`
	Words     int        `json:"words"`
	TopWords  []WordFreq `json:"top_words"`
}

// DashboardReport holds every derived view the presentation layer consumes
// for one refresh. All tables are freshly computed; nothing here aliases
// mutable state.
type DashboardReport struct {
	TotalReviews int `json:"total_reviews"`
	RuralReviews int `json:"rural_reviews"`
	UrbanReviews int `json:"urban_reviews"`

	AreaCounts      []CategoryCount   `json:"area_counts"`
	SentimentCounts []CategoryCount   `json:"sentiment_counts"`
	TopDestinations []DestinationRank `json:"top_destinations"`
	TopDistricts    []DistrictScore   `json:"top_districts"`

	Corpora []SentimentCorpus `json:"corpora"`

	// GeoReviews is the filter-driven subset with usable coordinates.
	// HasGeoData distinguishes "nothing to plot" from an error.
	GeoReviews []*Review `json:"geo_reviews"`
	HasGeoData bool      `json:"has_geo_data"`

	// SkippedSentiments counts rows excluded from the district score
	// average because their sentiment is outside the fixed mapping.
	SkippedSentiments int `json:"skipped_sentiments"`
}
