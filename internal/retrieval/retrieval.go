// Package retrieval routes free-text queries to the passage categories
// that should answer them and fans filtered searches out over the
// store.
package retrieval

import (
	"maps"
	"sort"
	"strings"

	"aqrag/internal/domain"
)

// Category buckets a query by the kind of passage that should answer it.
type Category string

const (
	CategoryHealthGuidelines  Category = "health_guidelines"
	CategoryWeatherAirQuality Category = "weather_air_quality"
)

// DefaultTopK is the result budget used when none is configured.
const DefaultTopK = 5

// Action-seeking phrasing always routes to guidelines, even when the
// query also names a pollutant or measurement.
var actionPatterns = []string{
	"what should", "should i", "what can i", "can i", "is it safe",
	"advice", "recommend", "how to", "what to do", "go outside",
	"stay indoor", "avoid", "limit", "reduce",
}

var weatherPatterns = []string{
	"current", "forecast", "temperature", "humidity", "aqi", "pm2.5",
	"pm10", "ozone", "measurement", "data", "pollutant", "index",
	"concentration", "weather",
}

// Classify routes a query to a category. Unmatched queries default to
// health guidelines, the safer bucket.
func Classify(query string) Category {
	q := strings.ToLower(query)
	if containsAny(q, actionPatterns) {
		return CategoryHealthGuidelines
	}
	if containsAny(q, weatherPatterns) {
		return CategoryWeatherAirQuality
	}
	return CategoryHealthGuidelines
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// categoryFilters lists the (source, category) metadata pairs each
// query category may draw from.
var categoryFilters = map[Category][]map[string]any{
	CategoryWeatherAirQuality: crossFilters(
		[]string{"OpenAQClient", "WeatherClient"},
		[]string{"meteorological_factors", "weather_air_quality", "aqi_standards"},
	),
	CategoryHealthGuidelines: crossFilters(
		[]string{"GuidelinesClient"},
		[]string{"health_standards", "safety_guidelines", "protective_measures"},
	),
}

func crossFilters(sources, categories []string) []map[string]any {
	pairs := make([]map[string]any, 0, len(sources)*len(categories))
	for _, src := range sources {
		for _, cat := range categories {
			pairs = append(pairs, map[string]any{"source": src, "category": cat})
		}
	}
	return pairs
}

// Searcher is the store-facing subset the retriever needs.
type Searcher interface {
	SimilaritySearch(query string, k int, criteria map[string]any) ([]domain.SearchResult, error)
}

// Retriever performs category-routed retrieval over a searcher.
type Retriever struct {
	searcher Searcher
	topK     int
}

// New creates a retriever with the given result budget per query.
func New(searcher Searcher, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{searcher: searcher, topK: topK}
}

// Retrieve classifies the query and runs one equality-filtered search
// per allowed (source, category) pair: the store's filter is strict
// equality, so membership over several allowed sources is expressed as
// a search fan-out rather than a list-valued filter. Results are
// merged keeping the best score per passage, re-ranked, and truncated
// to the configured budget. A non-empty location pins an extra
// location filter key on every disjunct.
func (r *Retriever) Retrieve(query, location string) (Category, []domain.SearchResult, error) {
	category := Classify(query)

	var merged []domain.SearchResult
	seen := make(map[string]int)
	for _, criteria := range disjuncts(category, location) {
		results, err := r.searcher.SimilaritySearch(query, r.topK, criteria)
		if err != nil {
			return category, nil, err
		}
		for _, res := range results {
			if at, ok := seen[res.Content]; ok {
				if res.Score > merged[at].Score {
					merged[at] = res
				}
				continue
			}
			seen[res.Content] = len(merged)
			merged = append(merged, res)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })
	if len(merged) > r.topK {
		merged = merged[:r.topK]
	}
	return category, merged, nil
}

func disjuncts(category Category, location string) []map[string]any {
	pairs := categoryFilters[category]
	out := make([]map[string]any, 0, len(pairs))
	for _, pair := range pairs {
		criteria := maps.Clone(pair)
		if location != "" {
			criteria["location"] = location
		}
		out = append(out, criteria)
	}
	return out
}
