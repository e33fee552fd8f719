package services

import (
	"fmt"
	"sort"
	"strings"

	"tourism-dashboard/models"
	"tourism-dashboard/utils"
)

// InsightService computes every derived view the dashboard consumes.
type InsightService struct {
	logger   *utils.Logger
	topN     int
	topWords int
}

// NewInsightService creates an InsightService. topN bounds the ranking
// tables, topWords bounds each per-sentiment term-frequency table.
func NewInsightService(logger *utils.Logger, topN, topWords int) *InsightService {
	return &InsightService{logger: logger, topN: topN, topWords: topWords}
}

// Generate recomputes the full report from scratch. The distribution and
// ranking views are derived from the complete table; only the geo subset is
// driven by the user filter, exactly like the source dashboard where the
// sidebar filters feed the map alone.
func (s *InsightService) Generate(all []*models.Review, f Filter) *models.DashboardReport {
	report := &models.DashboardReport{
		TotalReviews:    len(all),
		AreaCounts:      CountByAreaType(all),
		SentimentCounts: CountBySentiment(all),
		TopDestinations: TopRuralPositiveDestinations(all, s.topN),
	}

	for _, r := range all {
		switch r.AreaType {
		case models.AreaRural:
			report.RuralReviews++
		case models.AreaUrban:
			report.UrbanReviews++
		}
	}

	report.TopDistricts, report.SkippedSentiments = TopDistrictsByScore(all, s.topN)
	if report.SkippedSentiments > 0 {
		for _, v := range invalidSentiments(all).Values() {
			s.logger.Warn("[insights] Sentiment %q has no score mapping — excluded from district averages", v)
		}
	}

	for _, sentiment := range []string{models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative} {
		report.Corpora = append(report.Corpora, BuildSentimentCorpus(all, sentiment, s.topWords))
	}

	report.GeoReviews = GeoRecords(f.Apply(all))
	report.HasGeoData = len(report.GeoReviews) > 0

	return report
}

// CountByAreaType groups rows by area type and counts them, in first-seen
// order. An empty table yields an empty result.
func CountByAreaType(reviews []*models.Review) []models.CategoryCount {
	return countBy(reviews, func(r *models.Review) string { return r.AreaType })
}

// CountBySentiment groups rows by sentiment and counts them, in first-seen
// order.
func CountBySentiment(reviews []*models.Review) []models.CategoryCount {
	return countBy(reviews, func(r *models.Review) string { return r.Sentiment })
}

func countBy(reviews []*models.Review, key func(*models.Review) string) []models.CategoryCount {
	index := make(map[string]int)
	counts := make([]models.CategoryCount, 0)
	for _, r := range reviews {
		k := key(r)
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, models.CategoryCount{Value: k, Count: 1})
	}
	return counts
}

// TopRuralPositiveDestinations counts positive reviews per rural destination
// and returns the n largest, sorted descending by count. Ties keep
// first-seen destination order.
func TopRuralPositiveDestinations(reviews []*models.Review, n int) []models.DestinationRank {
	index := make(map[string]int)
	ranks := make([]models.DestinationRank, 0)
	for _, r := range reviews {
		if r.AreaType != models.AreaRural || r.Sentiment != models.SentimentPositive {
			continue
		}
		if i, ok := index[r.Destination]; ok {
			ranks[i].PositiveCount++
			continue
		}
		index[r.Destination] = len(ranks)
		ranks = append(ranks, models.DestinationRank{Destination: r.Destination, PositiveCount: 1})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].PositiveCount > ranks[j].PositiveCount
	})
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// TopDistrictsByScore maps each row's sentiment onto the fixed 0/1/2 score,
// averages per district, joins the average with the district's TOTAL row
// count (score validity ignored), and returns the n districts with the
// highest average, descending, ties in first-seen district order. Rows whose
// sentiment has no score mapping are excluded from the average and reported
// via the second return value; a district with no scoreable rows at all
// drops out of the result entirely. Averages are always within [0, 2].
func TopDistrictsByScore(reviews []*models.Review, n int) ([]models.DistrictScore, int) {
	type acc struct {
		scoreSum   int
		scoreCount int
		rowCount   int
	}
	index := make(map[string]*acc)
	order := make([]string, 0)
	skipped := 0

	for _, r := range reviews {
		a, ok := index[r.District]
		if !ok {
			a = &acc{}
			index[r.District] = a
			order = append(order, r.District)
		}
		a.rowCount++

		score, valid := models.SentimentScore(r.Sentiment)
		if !valid {
			skipped++
			continue
		}
		a.scoreSum += score
		a.scoreCount++
	}

	scores := make([]models.DistrictScore, 0, len(order))
	for _, district := range order {
		a := index[district]
		if a.scoreCount == 0 {
			// Inner join: no valid score rows, no output row.
			continue
		}
		scores = append(scores, models.DistrictScore{
			District:     district,
			AverageScore: float64(a.scoreSum) / float64(a.scoreCount),
			ReviewCount:  a.rowCount,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].AverageScore > scores[j].AverageScore
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores, skipped
}

// GeoRecords returns the rows with usable coordinates. An empty result is a
// normal outcome, not a failure; the caller signals "no geo data" to the
// presentation layer.
func GeoRecords(reviews []*models.Review) []*models.Review {
	result := make([]*models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.HasGeo {
			result = append(result, r)
		}
	}
	return result
}

func invalidSentiments(reviews []*models.Review) *utils.Set {
	s := utils.NewSet()
	for _, r := range reviews {
		if _, valid := models.SentimentScore(r.Sentiment); !valid {
			s.Add(r.Sentiment)
		}
	}
	return s
}

// Print renders the report to the terminal.
func (s *InsightService) Print(r *models.DashboardReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 TOURISM REVIEW INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total reviews : \033[1m%d\033[0m\n", r.TotalReviews)
	fmt.Printf("  Rural reviews : \033[1m%d\033[0m\n", r.RuralReviews)
	fmt.Printf("  Urban reviews : \033[1m%d\033[0m\n", r.UrbanReviews)
	fmt.Println()

	fmt.Printf("\033[1;33m  Sentiment Distribution\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCounts(r.SentimentCounts, r.TotalReviews)
	fmt.Println()

	fmt.Printf("\033[1;33m  Area Type Distribution\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCounts(r.AreaCounts, r.TotalReviews)
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Rural Destinations by Positive Reviews\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopDestinations) == 0 {
		fmt.Printf("  No rural positive reviews\n")
	}
	for i, d := range r.TopDestinations {
		fmt.Printf("  \033[1m%2d.\033[0m %-30s \033[1;32m%d\033[0m\n", i+1, truncate(d.Destination, 28), d.PositiveCount)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Districts by Average Sentiment Score\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopDistricts) == 0 {
		fmt.Printf("  No scoreable reviews\n")
	}
	for i, d := range r.TopDistricts {
		fmt.Printf("  \033[1m%2d.\033[0m %-24s \033[1;36m%.2f\033[0m (%d reviews)\n",
			i+1, truncate(d.District, 22), d.AverageScore, d.ReviewCount)
	}
	if r.SkippedSentiments > 0 {
		fmt.Printf("  (%d rows excluded: sentiment outside score mapping)\n", r.SkippedSentiments)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Most Frequent Terms by Sentiment\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, c := range r.Corpora {
		top := c.TopWords
		if len(top) > 5 {
			top = top[:5]
		}
		words := make([]string, 0, len(top))
		for _, w := range top {
			words = append(words, fmt.Sprintf("%s(%d)", w.Word, w.Count))
		}
		if len(words) == 0 {
			fmt.Printf("  %-9s: no reviews\n", c.Sentiment)
		} else {
			fmt.Printf("  %-9s: %s\n", c.Sentiment, strings.Join(words, " "))
		}
	}
	fmt.Println()

	if r.HasGeoData {
		fmt.Printf("  Geocoded reviews in current filter: \033[1m%d\033[0m\n", len(r.GeoReviews))
	} else {
		fmt.Printf("  \033[33mNo geolocation data available to plot\033[0m\n")
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func printCounts(counts []models.CategoryCount, total int) {
	for _, c := range counts {
		bar := ""
		if total > 0 {
			bar = strings.Repeat("█", c.Count*40/total)
		}
		fmt.Printf("  %-12s %s (%d)\n", c.Value, bar, c.Count)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
