package constants

import (
	"fmt"
	"strings"
)

// Category is one of the fixed construction/industrial item categories.
type Category string

const (
	Electrical Category = "Electrical"
	Hardware   Category = "Hardware"
	Tools      Category = "Tools"
	Plumbing   Category = "Plumbing"
	HVAC       Category = "HVAC"
	Materials  Category = "Materials"
	Safety     Category = "Safety"
	Fasteners  Category = "Fasteners"
	Lumber     Category = "Lumber"
	Concrete   Category = "Concrete"
	Other      Category = "Other"
)

var allCategories = []Category{
	Electrical,
	Hardware,
	Tools,
	Plumbing,
	HVAC,
	Materials,
	Safety,
	Fasteners,
	Lumber,
	Concrete,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form classifier output onto the fixed set.
// Anything outside the set collapses to Other.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Other, false
	}
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}
	return Other, false
}

// BOMNumber builds the per-category sequential identifier, e.g. "ELE-001".
func BOMNumber(cat Category, seq int) string {
	prefix := strings.ToUpper(string(cat))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%03d", prefix, seq)
}
