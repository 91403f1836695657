package domain

import "strings"

// attrAlternativeTitle is the channel attribute controlling whether
// alternative-title documents are emitted during indexing.
const attrAlternativeTitle = "sp_vv_alternativeTitle"

// ChannelAttributes are per-deployment feature flags computed once
// from the publisher channel configuration. Immutable.
type ChannelAttributes struct {
	// AddAlternativeDocuments enables alternative-title document
	// expansion for organisations and products.
	AddAlternativeDocuments bool
}

// NewChannelAttributes derives the feature flags from the raw channel
// attribute bag. The alternative-title flag is set when the attribute
// is boolean true or its string form equals "true" case-insensitively;
// anything else, including absence, means false.
func NewChannelAttributes(attributes map[string]any) ChannelAttributes {
	return ChannelAttributes{
		AddAlternativeDocuments: boolAttribute(attributes, attrAlternativeTitle),
	}
}

func boolAttribute(attributes map[string]any, name string) bool {
	value, ok := attributes[name]
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
