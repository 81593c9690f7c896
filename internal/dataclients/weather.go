package dataclients

import "aqrag/internal/domain"

// WeatherClient carries passages explaining how weather shapes air
// quality.
type WeatherClient struct{}

func NewWeatherClient() *WeatherClient { return &WeatherClient{} }

func (c *WeatherClient) Name() string { return "WeatherClient" }

func (c *WeatherClient) InitialDocuments() []domain.Document {
	return []domain.Document{
		stamp(c.Name(), weatherRelationships, map[string]any{
			"type":     "weather_air_quality",
			"category": "weather_air_quality",
		}),
		stamp(c.Name(), seasonalFactors, map[string]any{
			"type":     "weather_air_quality",
			"category": "meteorological_factors",
		}),
	}
}

const weatherRelationships = `Weather and air quality relationships:

Temperature inversions: cold air traps pollutants near the ground,
most often in winter months, and can cause rapid deterioration of air
quality.

High pressure systems: stable atmospheric conditions reduce air
mixing, so pollutants accumulate near the surface.

Wind patterns: strong winds disperse pollutants while calm conditions
allow buildup; wind direction decides which areas are affected.

Humidity: high humidity can trap pollutants and worsen how poor air
quality feels.`

const seasonalFactors = `Seasonal and meteorological factors:

Winter: heating emissions and temperature inversions push pollution
up.

Summer: heat drives ozone formation, and wildfire smoke can travel
hundreds of kilometres.

Spring: pollen and dust storms add to particulate load.

Fall: agricultural burning and early inversions raise particulate
concentrations.

Check wind and pressure forecasts alongside AQI forecasts when
planning outdoor activities.`
