package services

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"tourism-dashboard/models"
)

const minWordRunes = 3 // shorter tokens carry no signal for the word cloud

// stopwords contains English function words and high-frequency fillers that
// carry no discriminative value for the per-sentiment term tables.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "was": {}, "were": {}, "are": {}, "but": {},
	"for": {}, "with": {}, "this": {}, "that": {}, "there": {}, "here": {},
	"our": {}, "your": {}, "their": {}, "his": {}, "her": {}, "its": {},
	"you": {}, "they": {}, "them": {}, "had": {}, "have": {}, "has": {},
	"not": {}, "very": {}, "too": {}, "also": {}, "just": {}, "from": {},
	"all": {}, "out": {}, "get": {}, "got": {}, "would": {}, "could": {},
	"should": {}, "been": {}, "being": {}, "which": {}, "what": {},
	"when": {}, "where": {}, "while": {}, "who": {}, "will": {}, "did": {},
	"can": {}, "one": {}, "more": {}, "most": {}, "some": {}, "than": {},
	"then": {}, "into": {}, "about": {}, "over": {}, "after": {}, "before": {},
}

// BuildCorpus concatenates the text of every review with the given
// sentiment, in table row order, joined by a single space. An empty corpus
// (no matching rows) is a normal result.
func BuildCorpus(reviews []*models.Review, sentiment string) string {
	parts := make([]string, 0)
	for _, r := range reviews {
		if r.Sentiment == sentiment {
			parts = append(parts, r.Text)
		}
	}
	return strings.Join(parts, " ")
}

// TopWords tokenizes the corpus, drops stopwords and short tokens, and
// returns the n most frequent terms, descending, ties in first-seen order.
// Percent is each term's share of all kept tokens.
func TopWords(corpus string, n int) []models.WordFreq {
	tokens := tokenize(corpus)
	if len(tokens) == 0 {
		return nil
	}

	index := make(map[string]int)
	freqs := make([]models.WordFreq, 0)
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			freqs[i].Count++
			continue
		}
		index[tok] = len(freqs)
		freqs = append(freqs, models.WordFreq{Word: tok, Count: 1})
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	if len(freqs) > n {
		freqs = freqs[:n]
	}

	total := float64(len(tokens))
	for i := range freqs {
		freqs[i].Percent = round2(float64(freqs[i].Count) / total * 100)
	}
	return freqs
}

// BuildSentimentCorpus produces the full per-sentiment bundle: the corpus
// string, the kept-token count, and the ranked term table.
func BuildSentimentCorpus(reviews []*models.Review, sentiment string, topWords int) models.SentimentCorpus {
	corpus := BuildCorpus(reviews, sentiment)
	return models.SentimentCorpus{
		Sentiment: sentiment,
		Text:      corpus,
		Words:     len(tokenize(corpus)),
		TopWords:  TopWords(corpus, topWords),
	}
}

// tokenize lowercases the corpus and splits on non-letter runes, dropping
// stopwords and tokens shorter than minWordRunes.
func tokenize(corpus string) []string {
	raw := strings.FieldsFunc(strings.ToLower(corpus), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := raw[:0]
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < minWordRunes {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
