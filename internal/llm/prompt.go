package llm

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt composes the classifier system message with the category
// rubric and strict output-format rules.
func BuildSystemPrompt(allowedCategories []string) string {
	rubric := map[string]string{
		"Electrical": "wires, outlets, switches, boxes, breakers, etc.",
		"Hardware":   "screws, nails, bolts, hinges, handles, etc.",
		"Tools":      "hammers, drills, saws, wrenches, etc.",
		"Plumbing":   "pipes, fittings, faucets, valves, etc.",
		"HVAC":       "ducts, vents, filters, thermostats, etc.",
		"Materials":  "lumber, drywall, insulation, etc.",
		"Safety":     "gloves, helmets, goggles, etc.",
		"Fasteners":  "screws, nails, bolts, washers, etc.",
		"Lumber":     "wood, boards, plywood, etc.",
		"Concrete":   "cement, aggregates, additives, etc.",
		"Other":      "anything that doesn't fit above",
	}

	var lines []string
	for _, cat := range allowedCategories {
		if hint, ok := rubric[cat]; ok {
			lines = append(lines, fmt.Sprintf("- %s (%s)", cat, hint))
		} else {
			lines = append(lines, "- "+cat)
		}
	}

	return "You are a construction materials categorization expert.\n" +
		"Categorize each item into one of these categories:\n" +
		strings.Join(lines, "\n") + "\n\n" +
		`Return ONLY a JSON array where each element is: {"item_index": number, "category": "category_name"}` + "\n" +
		`Example: [{"item_index": 1, "category": "Electrical"}, {"item_index": 2, "category": "Hardware"}]`
}

// BuildUserPrompt lists the item descriptions, 1-indexed.
func BuildUserPrompt(descriptions []string) string {
	var b strings.Builder
	b.WriteString("Categorize these construction/industrial items:\n\n")
	for i, desc := range descriptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, desc)
	}
	b.WriteString("\nReturn ONLY the JSON array, no other text.")
	return b.String()
}
