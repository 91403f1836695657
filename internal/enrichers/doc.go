// Package enrichers contains the behaviour shared by the document
// enrichers: name-derived field computation with umlaut
// transliteration, and alternative-title document expansion.
//
// The concrete enrichers live in subpackages, one per object type:
//
//   - organisation: citygovOrganisation resources
//   - person: citygovPerson resources
//   - product: citygovProduct resources
//   - contactpoint: contact data shared by organisations and persons
//
// Each implements driven.DocumentEnricher and is a no-op for
// resources of any other object type.
package enrichers
