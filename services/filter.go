package services

import (
	"tourism-dashboard/models"
	"tourism-dashboard/utils"
)

// Filter is a conjunction of two set-membership predicates: a review passes
// when its sentiment is in Sentiments AND its area type is in AreaTypes.
// An empty set for either dimension matches nothing; there is deliberately
// no "empty means all" fallback, so the UI behaves predictably when the
// user deselects everything.
type Filter struct {
	Sentiments *utils.Set
	AreaTypes  *utils.Set
}

// NewFilter builds a Filter from explicit value lists.
func NewFilter(sentiments, areaTypes []string) Filter {
	return Filter{
		Sentiments: utils.NewSet(sentiments...),
		AreaTypes:  utils.NewSet(areaTypes...),
	}
}

// AllFilter builds the default filter selecting every sentiment and area
// type observed in the table.
func AllFilter(reviews []*models.Review) Filter {
	return Filter{
		Sentiments: DistinctSentiments(reviews),
		AreaTypes:  DistinctAreaTypes(reviews),
	}
}

// Apply returns the subsequence of rows passing both predicates, in input
// order. The input is never mutated.
func (f Filter) Apply(reviews []*models.Review) []*models.Review {
	result := make([]*models.Review, 0, len(reviews))
	for _, r := range reviews {
		if f.Sentiments.Contains(r.Sentiment) && f.AreaTypes.Contains(r.AreaType) {
			result = append(result, r)
		}
	}
	return result
}

// DistinctSentiments returns the distinct normalized sentiment values in
// first-seen order. Filter options are always drawn from observed values,
// never hard-coded.
func DistinctSentiments(reviews []*models.Review) *utils.Set {
	s := utils.NewSet()
	for _, r := range reviews {
		s.Add(r.Sentiment)
	}
	return s
}

// DistinctAreaTypes returns the distinct normalized area-type values in
// first-seen order.
func DistinctAreaTypes(reviews []*models.Review) *utils.Set {
	s := utils.NewSet()
	for _, r := range reviews {
		s.Add(r.AreaType)
	}
	return s
}
