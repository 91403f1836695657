// Package services contains the core orchestration of the citygov
// search module: the enrichment pipeline driving the document
// enrichers, the person search/suggest query construction, and the
// online service teaser resolution.
//
// Services depend on ports only; adapters are injected by the caller.
package services
