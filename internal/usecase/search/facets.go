package search

import (
	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/candidate"
	"github.com/connecthub/omnisearch/internal/domain/search/page"
)

// globalDimensions are the facet dimensions computed for merged results.
// Every list-valued dimension is here so hits from any entity type
// contribute their flattened values.
var globalDimensions = []string{
	entity.DimLocation,
	entity.DimCategory,
	entity.DimSkills,
	entity.DimCompany,
	entity.DimTechnologies,
	entity.DimInvestmentFocus,
}

// scopedDimensions returns the facet dimensions for a single-entity search,
// including the entity-specific ones.
func scopedDimensions(t entity.Type) []string {
	switch t {
	case entity.TypeUser:
		return []string{entity.DimLocation, entity.DimIndustry, entity.DimSkills}
	case entity.TypeJob:
		return []string{entity.DimLocation, entity.DimCompany, entity.DimSkills, entity.DimSalaryRange}
	case entity.TypeEvent:
		return []string{entity.DimLocation, entity.DimCategory}
	case entity.TypeService:
		return []string{entity.DimLocation, entity.DimCategory, entity.DimCompany}
	case entity.TypeInvestor:
		return []string{entity.DimLocation, entity.DimCompany, entity.DimInvestmentFocus, entity.DimFundSize}
	case entity.TypeProject:
		return []string{entity.DimCategory, entity.DimTechnologies}
	}
	return nil
}

// computeFacets builds value→count histograms over the full result set.
// It must run before pagination: facets describe the whole set, not the
// visible page. Records with no value for a dimension contribute to no
// bucket; withEntityType adds the per-type result count histogram.
func computeFacets(results []candidate.Candidate, dimensions []string, withEntityType bool) page.Facets {
	facets := make(page.Facets)

	if withEntityType {
		byType := make(map[string]int)
		for i := range results {
			byType[results[i].Type().String()]++
		}
		if len(byType) > 0 {
			facets[entity.DimEntityType] = byType
		}
	}

	for _, dim := range dimensions {
		bucket := make(map[string]int)
		for i := range results {
			for _, v := range results[i].Record().FacetValues(dim) {
				if v == "" {
					continue
				}
				bucket[v]++
			}
		}
		if len(bucket) > 0 {
			facets[dim] = bucket
		}
	}

	return facets
}
