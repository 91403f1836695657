// Package driving defines the interfaces through which the outside
// world drives the core: the indexing pipeline and the person
// search/suggest API surface.
//
// CLI commands and the GraphQL layer of the hosting platform call in
// through these; core services implement them.
package driving
