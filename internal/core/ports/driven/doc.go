// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services and enrichers depend on these
// interfaces, and infrastructure adapters implement them:
//
//   - ResourceLoader: loads referenced content resources
//   - HierarchyLoader: resolves organisation ancestor paths
//   - IndexService / IndexUpdater: submits documents to the search index
//   - DocumentEnricher: one stage of the enrichment chain
//   - CompetenceFilter: resolves competence range filters to person IDs
//   - ContentCollector: extracts text from structured content blocks
//   - Search / Suggest: executes person search and suggest queries
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or enricher package
package driven
