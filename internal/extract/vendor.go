package extract

import (
	"regexp"
	"strings"
)

// Vendor names only ever come from attachment text headers. The heuristics
// below scan the first 30 lines, skipping anything that looks like an email
// greeting or metadata line, then try progressively looser company-name
// shapes. Precision over recall: a missed vendor lands in review, a greeting
// mistaken for a vendor pollutes the registry match.

const vendorScanLines = 30

var vendorSkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(good|hello|hi|dear|greetings|thank you|thanks|please find|attached)`),
	regexp.MustCompile(`(?i)^(from|to|subject|date|sent|received)`),
	regexp.MustCompile(`^[a-z]`),
	regexp.MustCompile(`(?i)^(hi|hello)\s+[a-z]`),
}

var vendorSkipPhrases = []string{
	"good afternoon", "good morning", "good evening",
	"thank you for", "please find", "attached is",
	"hi ", "hello ", "dear ", "greetings",
}

var (
	// all-caps name ending in a corporate-suffix word (THE HOME DEPOT, NOVA RECON)
	vendorAllCaps = regexp.MustCompile(`^([A-Z][A-Z\s&.,]{5,50}(?:DEPOT|RECON|CONSTRUCTION|RECYCLING|SUPPLIES|SERVICES|STORE|LLC|INC|CORP))`)
	// mixed-case name ending in a legal suffix
	vendorLegalSuffix = regexp.MustCompile(`^([A-Z][A-Za-z\s&.,]{5,50}(?:Pvt|Ltd|Inc|LLC|Corp|Corporation|Company))`)
	// name immediately preceding a marker word
	vendorBeforeMarker = regexp.MustCompile(`^([A-Z][A-Za-z\s&.,]{5,50}?)\s*(?:Customer|Receipt|Invoice)`)
	// standalone all-caps line
	vendorStandalone = regexp.MustCompile(`^([A-Z][A-Z\s&.,]{5,50})`)

	vendorArticlePrefix = regexp.MustCompile(`(?i)^(THE|A|AN)\s+`)
	vendorLegalTail     = regexp.MustCompile(`(?i)\s+(Pvt|Ltd|Inc|LLC|Corp|Corporation|Company)\.?$`)
	greetingPrefix      = regexp.MustCompile(`(?i)^(good|hello|hi|dear)`)
)

// extractVendor scans header lines of attachment text for a company name.
func (e *Engine) extractVendor(text string) (Field, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) > vendorScanLines {
		lines = lines[:vendorScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < 3 || skipVendorLine(line) {
			continue
		}

		m := vendorAllCaps.FindStringSubmatch(line)
		if m == nil {
			m = vendorLegalSuffix.FindStringSubmatch(line)
		}
		if m == nil {
			m = vendorBeforeMarker.FindStringSubmatch(line)
		}
		if m == nil && standaloneUppercase(line) {
			m = vendorStandalone.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}

		name := cleanVendorName(m[1])
		if len(name) < 3 || looksLikeGreeting(name) {
			continue
		}
		return Field{
			Value:      name,
			Confidence: 0.90,
			Provenance: Provenance{Method: "header_pattern", Snippet: line},
		}, true
	}
	return Field{}, false
}

func skipVendorLine(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range vendorSkipPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, re := range vendorSkipPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	// a colon early in the line suggests metadata, not a letterhead
	head := line
	if len(head) > 15 {
		head = head[:15]
	}
	if strings.Contains(head, ":") &&
		!containsFold(line, "customer") && !containsFold(line, "receipt") &&
		!containsFold(line, "invoice") && !containsFold(line, "order") {
		return true
	}
	return false
}

// standaloneUppercase reports whether at least 2 of the first 3 tokens are
// fully uppercase, the shape of a letterhead line without a suffix word.
func standaloneUppercase(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(line) < 5 {
		return false
	}
	if len(words) > 3 {
		words = words[:3]
	}
	upper := 0
	for _, w := range words {
		if len(w) > 1 && w == strings.ToUpper(w) && w != strings.ToLower(w) {
			upper++
		}
	}
	return upper >= 2
}

func cleanVendorName(name string) string {
	name = strings.TrimSpace(name)
	name = vendorArticlePrefix.ReplaceAllString(name, "")
	name = vendorLegalTail.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

func looksLikeGreeting(name string) bool {
	return greetingPrefix.MatchString(name)
}
