package dataclients

import "aqrag/internal/domain"

// GuidelinesClient carries WHO and EPA health guidance passages.
type GuidelinesClient struct{}

func NewGuidelinesClient() *GuidelinesClient { return &GuidelinesClient{} }

func (c *GuidelinesClient) Name() string { return "GuidelinesClient" }

func (c *GuidelinesClient) InitialDocuments() []domain.Document {
	return []domain.Document{
		stamp(c.Name(), whoGuidelines, map[string]any{
			"type":     "who_guidelines",
			"category": "health_standards",
		}),
		stamp(c.Name(), healthByLevel, map[string]any{
			"type":     "health_recommendations",
			"category": "safety_guidelines",
		}),
		stamp(c.Name(), protectiveMeasures, map[string]any{
			"type":     "protective_measures",
			"category": "protective_measures",
		}),
	}
}

const whoGuidelines = `WHO Air Quality Guidelines 2021:

Annual mean concentrations:
- PM2.5: 5 µg/m³ (interim target: 15 µg/m³)
- PM10: 15 µg/m³ (interim target: 45 µg/m³)
- NO2: 10 µg/m³ (interim target: 40 µg/m³)
- O3: 60 µg/m³ (8-hour mean)

Daily mean concentrations:
- PM2.5: 15 µg/m³ (interim target: 35 µg/m³)
- PM10: 45 µg/m³ (interim target: 70 µg/m³)

Health effects by pollutant:

PM2.5 (fine particulate matter) causes cardiovascular disease,
respiratory disease, lung cancer, premature death, and reduced lung
function in children.

PM10 (coarse particulate matter) causes respiratory irritation,
aggravated asthma, reduced lung function, and increased hospital
admissions.

NO2 (nitrogen dioxide) causes respiratory inflammation, reduced lung
function, increased asthma attacks, and increased respiratory
infections.

O3 (ozone) causes respiratory irritation, reduced lung function,
aggravated asthma, and increased hospital admissions.`

const healthByLevel = `Health recommendations by air quality level:

Good (0-50): everyone can enjoy outdoor activities; no special
precautions needed.

Moderate (51-100): sensitive individuals should consider reducing
prolonged outdoor exertion; the general public can continue normal
activities.

Unhealthy for Sensitive Groups (101-150): children, elderly people,
and people with heart or lung disease should reduce prolonged outdoor
exertion.

Unhealthy (151-200): everyone should reduce prolonged outdoor
exertion; sensitive groups should avoid outdoor activities; consider
using air purifiers indoors.

Very Unhealthy (201-300): everyone should avoid outdoor activities,
stay indoors with windows closed, and consider wearing N95 masks if
going outside is necessary.

Hazardous (301+): everyone should stay indoors with windows and doors
closed, use air purifiers, and avoid all outdoor activities.`

const protectiveMeasures = `Protective measures and recommendations:

General population: check air quality forecasts daily, plan outdoor
activities when air quality is good, reduce outdoor activities when it
is poor, use air purifiers at home and work, and keep windows closed
during poor air quality.

Sensitive groups (children, elderly, asthma, heart disease): be extra
cautious when AQI exceeds 100, avoid outdoor activities when AQI
exceeds 150, use air purifiers with HEPA filters, keep rescue
medications readily available, and monitor symptoms closely.

Outdoor workers: reduce outdoor work when AQI exceeds 150, use N95
respirators when necessary, take frequent breaks indoors, and follow
workplace safety protocols.

Schools and childcare: keep children indoors when AQI exceeds 150, use
air purifiers in classrooms, modify outdoor activities, and have
emergency plans ready.`
