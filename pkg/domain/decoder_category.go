package domain

import dErrors "dochub/pkg/domain-errors"

// DecoderCategory names a compliance decoder that surfaces jurisdiction notes
// keyed by topic.
// Invariant: the value must be one of the supported categories.
//
// Usage: construct via ParseDecoderCategory at trust boundaries (URL params,
// request bodies); direct casting bypasses validation.
type DecoderCategory string

// Supported decoder categories.
const (
	DecoderCredit           DecoderCategory = "credit"
	DecoderCriminalEviction DecoderCategory = "criminal_eviction"
)

// decoderCategories lists the categories in display order.
var decoderCategories = []DecoderCategory{DecoderCredit, DecoderCriminalEviction}

// ParseDecoderCategory constructs a DecoderCategory from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseDecoderCategory(s string) (DecoderCategory, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "decoder category cannot be empty")
	}
	c := DecoderCategory(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported decoder category")
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c DecoderCategory) IsValid() bool {
	return c == DecoderCredit || c == DecoderCriminalEviction
}

// String returns the string representation of the category.
func (c DecoderCategory) String() string {
	return string(c)
}

// DecoderCategories returns all supported categories in display order.
func DecoderCategories() []DecoderCategory {
	out := make([]DecoderCategory, len(decoderCategories))
	copy(out, decoderCategories)
	return out
}
