package services

import (
	"reflect"
	"testing"

	"tourism-dashboard/models"
)

// Scenario table from rows (Positive,Rural,Kandy), (Positive,Rural,Kandy),
// (Negative,Urban,Colombo).
func scenarioReviews() []*models.Review {
	return []*models.Review{
		{Sentiment: "Positive", AreaType: "Rural", District: "Kandy", Destination: "Kandy"},
		{Sentiment: "Positive", AreaType: "Rural", District: "Kandy", Destination: "Kandy"},
		{Sentiment: "Negative", AreaType: "Urban", District: "Colombo", Destination: "Colombo Fort"},
	}
}

func TestCategoryCounts(t *testing.T) {
	area := CountByAreaType(scenarioReviews())
	wantArea := []models.CategoryCount{{Value: "Rural", Count: 2}, {Value: "Urban", Count: 1}}
	if !reflect.DeepEqual(area, wantArea) {
		t.Errorf("area counts: got %v, want %v", area, wantArea)
	}

	sentiment := CountBySentiment(scenarioReviews())
	wantSentiment := []models.CategoryCount{{Value: "Positive", Count: 2}, {Value: "Negative", Count: 1}}
	if !reflect.DeepEqual(sentiment, wantSentiment) {
		t.Errorf("sentiment counts: got %v, want %v", sentiment, wantSentiment)
	}
}

func TestCategoryCountsSumToInput(t *testing.T) {
	reviews := scenarioReviews()
	counts := CountBySentiment(reviews)

	sum := 0
	seen := map[string]bool{}
	for _, c := range counts {
		sum += c.Count
		if seen[c.Value] {
			t.Errorf("duplicate grouping key %q", c.Value)
		}
		seen[c.Value] = true
	}
	if sum != len(reviews) {
		t.Errorf("counts sum to %d, want %d", sum, len(reviews))
	}
}

func TestCategoryCountsEmptyInput(t *testing.T) {
	if got := CountByAreaType(nil); len(got) != 0 {
		t.Errorf("empty input should yield empty table, got %v", got)
	}
}

func TestTopRuralPositiveDestinations(t *testing.T) {
	got := TopRuralPositiveDestinations(scenarioReviews(), 10)
	want := []models.DestinationRank{{Destination: "Kandy", PositiveCount: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top destinations: got %v, want %v", got, want)
	}
}

func TestTopDestinationsTruncationAndOrder(t *testing.T) {
	var reviews []*models.Review
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	for i, name := range names {
		for j := 0; j <= i; j++ {
			reviews = append(reviews, &models.Review{Sentiment: "Positive", AreaType: "Rural", Destination: name})
		}
	}

	got := TopRuralPositiveDestinations(reviews, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(got))
	}
	// L has 12 positive reviews and must rank first.
	if got[0].Destination != "L" || got[0].PositiveCount != 12 {
		t.Errorf("top entry: got %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].PositiveCount > got[i-1].PositiveCount {
			t.Errorf("ranking not descending at index %d: %v", i, got)
		}
	}
}

func TestTopDestinationsTieBreakFirstSeen(t *testing.T) {
	reviews := []*models.Review{
		{Sentiment: "Positive", AreaType: "Rural", Destination: "Zebra Rock"},
		{Sentiment: "Positive", AreaType: "Rural", Destination: "Apple Hill"},
	}
	got := TopRuralPositiveDestinations(reviews, 10)
	if got[0].Destination != "Zebra Rock" {
		t.Errorf("tie must keep first-seen order, got %v", got)
	}
}

func TestTopDestinationsIdempotent(t *testing.T) {
	reviews := scenarioReviews()
	first := TopRuralPositiveDestinations(reviews, 10)
	second := TopRuralPositiveDestinations(reviews, 10)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-application changed the result: %v vs %v", first, second)
	}
}

func TestTopDistrictsGalleScenario(t *testing.T) {
	// District "Galle" has two rows with scores 2 and 0 → average 1.0, count 2.
	reviews := []*models.Review{
		{Sentiment: "Positive", AreaType: "Urban", District: "Galle"},
		{Sentiment: "Negative", AreaType: "Urban", District: "Galle"},
	}

	got, skipped := TopDistrictsByScore(reviews, 10)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	want := []models.DistrictScore{{District: "Galle", AverageScore: 1.0, ReviewCount: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("district scores: got %v, want %v", got, want)
	}
}

func TestTopDistrictsScoreBounds(t *testing.T) {
	got, _ := TopDistrictsByScore(scenarioReviews(), 10)
	for _, d := range got {
		if d.AverageScore < 0 || d.AverageScore > 2 {
			t.Errorf("average score %f for %s outside [0,2]", d.AverageScore, d.District)
		}
	}
}

func TestTopDistrictsExcludesUnknownSentiment(t *testing.T) {
	reviews := []*models.Review{
		{Sentiment: "Positive", District: "Kandy"},
		{Sentiment: "Mixed", District: "Kandy"},
		{Sentiment: "Mixed", District: "Jaffna"},
	}

	got, skipped := TopDistrictsByScore(reviews, 10)
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	// Kandy keeps its TOTAL row count of 2, but only the valid row feeds
	// the average. Jaffna has no valid rows and must vanish entirely.
	want := []models.DistrictScore{{District: "Kandy", AverageScore: 2.0, ReviewCount: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("district scores: got %v, want %v", got, want)
	}
}

func TestTopDistrictsDescendingWithFirstSeenTies(t *testing.T) {
	reviews := []*models.Review{
		{Sentiment: "Neutral", District: "Matale"},
		{Sentiment: "Positive", District: "Badulla"},
		{Sentiment: "Neutral", District: "Ampara"},
	}

	got, _ := TopDistrictsByScore(reviews, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 districts, got %d", len(got))
	}
	if got[0].District != "Badulla" {
		t.Errorf("highest average must rank first, got %v", got)
	}
	// Matale and Ampara tie at 1.0; Matale was seen first.
	if got[1].District != "Matale" || got[2].District != "Ampara" {
		t.Errorf("tie-break must keep first-seen order, got %v", got)
	}
}

func TestGeoRecords(t *testing.T) {
	reviews := []*models.Review{
		{Destination: "Ella", HasGeo: true, Latitude: 6.8667, Longitude: 81.0466},
		{Destination: "Lipton Seat"},
	}

	got := GeoRecords(reviews)
	if len(got) != 1 || got[0].Destination != "Ella" {
		t.Errorf("geo records: got %v", got)
	}
	for _, r := range got {
		if !r.HasGeo {
			t.Errorf("row without coordinates leaked into geo output: %+v", r)
		}
	}
}

func TestGeoRecordsEmptyIsSignal(t *testing.T) {
	// One row, no coordinates, all filters selected: the selector returns
	// empty and the report flags "no geo data" rather than failing.
	reviews := []*models.Review{
		{Sentiment: "Positive", AreaType: "Rural", District: "Badulla", Destination: "Lipton Seat"},
	}

	svc := NewInsightService(newTestLogger(), 10, 50)
	report := svc.Generate(reviews, AllFilter(reviews))

	if len(report.GeoReviews) != 0 {
		t.Errorf("expected no geo rows, got %d", len(report.GeoReviews))
	}
	if report.HasGeoData {
		t.Error("HasGeoData must be false for an empty geo subset")
	}
}

func TestGenerateFullReport(t *testing.T) {
	reviews := []*models.Review{
		{Text: "wonderful beach", Sentiment: "Positive", AreaType: "Rural", District: "Matara", Destination: "Mirissa", HasGeo: true, Latitude: 5.9483, Longitude: 80.4716},
		{Text: "dirty harbour", Sentiment: "Negative", AreaType: "Urban", District: "Galle", Destination: "Galle Harbour"},
		{Text: "average museum", Sentiment: "Neutral", AreaType: "Urban", District: "Colombo", Destination: "National Museum"},
	}

	svc := NewInsightService(newTestLogger(), 10, 50)
	report := svc.Generate(reviews, AllFilter(reviews))

	if report.TotalReviews != 3 || report.RuralReviews != 1 || report.UrbanReviews != 2 {
		t.Errorf("scalars: total=%d rural=%d urban=%d", report.TotalReviews, report.RuralReviews, report.UrbanReviews)
	}
	if len(report.Corpora) != 3 {
		t.Fatalf("expected 3 corpora, got %d", len(report.Corpora))
	}
	if report.Corpora[0].Sentiment != "Positive" || report.Corpora[1].Sentiment != "Neutral" || report.Corpora[2].Sentiment != "Negative" {
		t.Errorf("corpora order: %v", report.Corpora)
	}
	if !report.HasGeoData || len(report.GeoReviews) != 1 {
		t.Errorf("geo: has=%v n=%d", report.HasGeoData, len(report.GeoReviews))
	}
	if report.SkippedSentiments != 0 {
		t.Errorf("skipped = %d, want 0", report.SkippedSentiments)
	}
}

func TestGenerateGeoFollowsFilter(t *testing.T) {
	reviews := []*models.Review{
		{Sentiment: "Positive", AreaType: "Rural", District: "Matale", Destination: "Sigiriya", HasGeo: true, Latitude: 7.957, Longitude: 80.7603},
		{Sentiment: "Negative", AreaType: "Urban", District: "Colombo", Destination: "Fort", HasGeo: true, Latitude: 6.9344, Longitude: 79.8428},
	}

	svc := NewInsightService(newTestLogger(), 10, 50)
	report := svc.Generate(reviews, NewFilter([]string{"Positive"}, []string{"Rural"}))

	// Distribution views stay full-table; only the geo subset is filtered.
	if report.TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2 (full table)", report.TotalReviews)
	}
	if len(report.GeoReviews) != 1 || report.GeoReviews[0].Destination != "Sigiriya" {
		t.Errorf("geo subset must follow the filter, got %v", report.GeoReviews)
	}
}
