package dataclients

import "aqrag/internal/domain"

// OpenAQClient carries AQI scale and pollutant breakpoint passages.
type OpenAQClient struct{}

func NewOpenAQClient() *OpenAQClient { return &OpenAQClient{} }

func (c *OpenAQClient) Name() string { return "OpenAQClient" }

func (c *OpenAQClient) InitialDocuments() []domain.Document {
	return []domain.Document{
		stamp(c.Name(), aqiCategories, map[string]any{
			"type":     "guidelines",
			"category": "aqi_standards",
		}),
		stamp(c.Name(), pmBreakpoints, map[string]any{
			"type":     "guidelines",
			"category": "aqi_standards",
		}),
	}
}

const aqiCategories = `Air Quality Index (AQI) categories:

Good (0-50), green: air quality is satisfactory and air pollution
poses little or no risk.

Moderate (51-100), yellow: air quality is acceptable, but there may be
a risk for people who are unusually sensitive to air pollution.

Unhealthy for Sensitive Groups (101-150), orange: members of sensitive
groups may experience health effects; the general public is less
likely to be affected.

Unhealthy (151-200), red: some members of the general public may
experience health effects; sensitive groups may experience more
serious effects.

Very Unhealthy (201-300), purple: health alert, the risk of health
effects is increased for everyone.

Hazardous (301+), maroon: health warning of emergency conditions;
everyone is more likely to be affected.`

const pmBreakpoints = `PM2.5 concentration breakpoints:

- Good: 0-12 µg/m³
- Moderate: 12.1-35.4 µg/m³
- Unhealthy for Sensitive Groups: 35.5-55.4 µg/m³
- Unhealthy: 55.5-150.4 µg/m³
- Very Unhealthy: 150.5-250.4 µg/m³
- Hazardous: 250.5 µg/m³ and above

PM2.5 is measured as a 24-hour average. Concentrations above the
moderate range are the usual trigger for sensitive-group advisories.`
