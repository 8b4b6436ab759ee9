// Package source defines the adapter capability every job source implements
// and the ordered registry the orchestrator fans out over.
package source

import (
	"context"

	"jobradar/internal/domain"
)

// Source is one job source: fetch raw data for a query and map it into the
// canonical candidate shape. Implementations collapse their own network and
// parse failures into empty slices; a returned error is advisory and only
// logged by the orchestrator.
type Source interface {
	Tag() domain.SourceTag
	Fetch(ctx context.Context, keywords, location string) ([]domain.JobCandidate, error)
}

// Registry holds the registered sources in a fixed order. Merge order of the
// orchestrator follows registration order.
type Registry struct {
	sources []Source
}

func NewRegistry(sources ...Source) *Registry {
	return &Registry{sources: sources}
}

// All returns every registered source in registration order.
func (r *Registry) All() []Source {
	return r.sources
}

// Enabled intersects the registered sources with the given tags, preserving
// registration order. Empty tags means all sources.
func (r *Registry) Enabled(tags []domain.SourceTag) []Source {
	if len(tags) == 0 {
		return r.sources
	}
	wanted := make(map[domain.SourceTag]struct{}, len(tags))
	for _, t := range tags {
		wanted[t] = struct{}{}
	}
	var enabled []Source
	for _, s := range r.sources {
		if _, ok := wanted[s.Tag()]; ok {
			enabled = append(enabled, s)
		}
	}
	return enabled
}
