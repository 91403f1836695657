// Package domain contains the value types of the CityGov search module:
// content resources, search index documents, channel attributes and the
// filter inputs of the person search API.
//
// Types in this package have no dependencies on adapters or services.
// Resources are read-only once decoded; index documents are mutated by
// the enricher chain and serialised by the index adapter.
package domain
