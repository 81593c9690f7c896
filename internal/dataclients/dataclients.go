// Package dataclients supplies the static reference passages the
// knowledge base is populated from. Live measurement APIs are the
// surrounding service's concern and never enter the engine; the
// catalogs here are the document-producing collaborators it is fed by.
package dataclients

import (
	"time"

	"aqrag/internal/domain"
)

// Client supplies documents for knowledge-base population.
type Client interface {
	Name() string
	InitialDocuments() []domain.Document
}

// All returns every built-in catalog.
func All() []Client {
	return []Client{
		NewGuidelinesClient(),
		NewOpenAQClient(),
		NewWeatherClient(),
	}
}

// stamp attaches the outgoing envelope every client puts on a
// document: its own name as the source plus an ingestion timestamp.
func stamp(clientName, content string, metadata map[string]any) domain.Document {
	meta := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["source"] = clientName
	meta["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	return domain.Document{Content: content, Metadata: meta}
}
