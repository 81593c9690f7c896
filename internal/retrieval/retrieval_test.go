package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqrag/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		query string
		want  Category
	}{
		{"should I go outside today", CategoryHealthGuidelines},
		{"is it safe to exercise", CategoryHealthGuidelines},
		{"what is the current pm2.5 concentration", CategoryWeatherAirQuality},
		{"weather forecast for tomorrow", CategoryWeatherAirQuality},
		{"ozone levels", CategoryWeatherAirQuality},
		// Action phrasing wins over topic words.
		{"should I run when pm2.5 is high", CategoryHealthGuidelines},
		{"asthma and children", CategoryHealthGuidelines},
		{"tell me something", CategoryHealthGuidelines},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.query), "query %q", tc.query)
	}
}

// fakeSearcher records the criteria of every search and serves canned
// results keyed by source.
type fakeSearcher struct {
	criteria []map[string]any
	results  map[string][]domain.SearchResult
}

func (f *fakeSearcher) SimilaritySearch(query string, k int, criteria map[string]any) ([]domain.SearchResult, error) {
	f.criteria = append(f.criteria, criteria)
	source, _ := criteria["source"].(string)
	return f.results[source], nil
}

func TestRetrieveFansOutPerSourceCategoryPair(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]domain.SearchResult{}}
	r := New(fake, 5)

	category, _, err := r.Retrieve("current aqi data", "")
	require.NoError(t, err)
	assert.Equal(t, CategoryWeatherAirQuality, category)

	// 2 sources x 3 categories for the weather bucket.
	require.Len(t, fake.criteria, 6)
	for _, c := range fake.criteria {
		assert.Contains(t, []any{"OpenAQClient", "WeatherClient"}, c["source"])
		assert.Contains(t, []any{"meteorological_factors", "weather_air_quality", "aqi_standards"}, c["category"])
		assert.NotContains(t, c, "location")
	}
}

func TestRetrieveAddsLocationToEveryDisjunct(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]domain.SearchResult{}}
	r := New(fake, 5)

	_, _, err := r.Retrieve("should I go outside", "delhi")
	require.NoError(t, err)

	require.Len(t, fake.criteria, 3)
	for _, c := range fake.criteria {
		assert.Equal(t, "GuidelinesClient", c["source"])
		assert.Equal(t, "delhi", c["location"])
	}
}

func TestRetrieveMergesDeduplicatesAndRanks(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]domain.SearchResult{
		"OpenAQClient": {
			{Content: "aqi passage", Score: 0.4},
			{Content: "shared passage", Score: 0.9},
		},
		"WeatherClient": {
			{Content: "shared passage", Score: 0.5},
			{Content: "weather passage", Score: 0.7},
		},
	}}
	r := New(fake, 5)

	_, results, err := r.Retrieve("current weather data", "")
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "shared passage", results[0].Content)
	assert.InDelta(t, 0.9, float64(results[0].Score), 1e-6)
	assert.Equal(t, "weather passage", results[1].Content)
	assert.Equal(t, "aqi passage", results[2].Content)
}

func TestRetrieveTruncatesToTopK(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]domain.SearchResult{
		"OpenAQClient": {
			{Content: "a", Score: 0.9},
			{Content: "b", Score: 0.8},
			{Content: "c", Score: 0.7},
		},
		"WeatherClient": {
			{Content: "d", Score: 0.6},
		},
	}}
	r := New(fake, 2)

	_, results, err := r.Retrieve("current weather data", "")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Content)
	assert.Equal(t, "b", results[1].Content)
}

func TestNewDefaultsTopK(t *testing.T) {
	r := New(&fakeSearcher{}, 0)
	assert.Equal(t, DefaultTopK, r.topK)
}
