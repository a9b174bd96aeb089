package categorize

import (
	"strings"

	"github.com/danielolaitan/invoice-agent/constants"
)

// categoryKeywords drives the fallback classifier. Order matters: the first
// category whose keyword appears in the description wins.
var categoryOrder = []constants.Category{
	constants.Electrical,
	constants.Hardware,
	constants.Tools,
	constants.Plumbing,
	constants.HVAC,
	constants.Materials,
	constants.Safety,
	constants.Fasteners,
	constants.Lumber,
	constants.Concrete,
}

var categoryKeywords = map[constants.Category][]string{
	constants.Electrical: {"wire", "outlet", "switch", "box", "breaker", "circuit", "electrical", "cable", "conduit", "octagon", "gang"},
	constants.Hardware:   {"screw", "nail", "bolt", "hinge", "handle", "bracket", "hardware"},
	constants.Tools:      {"hammer", "drill", "saw", "wrench", "tool", "bit", "puller"},
	constants.Plumbing:   {"pipe", "fitting", "faucet", "valve", "plumbing", "pvc"},
	constants.HVAC:       {"duct", "vent", "filter", "thermostat", "hvac"},
	constants.Materials:  {"drywall", "insulation", "material"},
	constants.Safety:     {"glove", "helmet", "goggle", "safety"},
	constants.Fasteners:  {"screw", "nail", "bolt", "washer", "fastener"},
	constants.Lumber:     {"lumber", "wood", "board", "plywood", "2x4", "2x6"},
	constants.Concrete:   {"cement", "concrete", "aggregate", "additive"},
}

// KeywordCategory classifies one description by keyword membership.
// No match means Other.
func KeywordCategory(description string) constants.Category {
	desc := strings.ToLower(description)
	for _, cat := range categoryOrder {
		for _, keyword := range categoryKeywords[cat] {
			if strings.Contains(desc, keyword) {
				return cat
			}
		}
	}
	return constants.Other
}
