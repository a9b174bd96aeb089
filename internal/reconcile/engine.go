package reconcile

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
)

// Decision thresholds on the 0-100 similarity scale.
const (
	autoMatchScore  = 90
	suggestScore    = 60
	maxSuggestions  = 3
	scoreResolution = 100
)

// Engine fuzzy-matches extracted vendor/project names against a registry
// snapshot. It is a pure function of (extracted fields, snapshot): re-running
// it over unchanged input reproduces the same normalized output.
type Engine struct {
	vendors  []entity.Vendor
	projects []entity.Project
	logger   *slog.Logger
}

func NewEngine(vendors []entity.Vendor, projects []entity.Project, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{vendors: vendors, projects: projects, logger: logger}
}

// MatchVendor scores the name against every alias of every vendor. It returns
// the single best entry (id 0 when the registry is empty or the name blank)
// and up to 3 suggestions scoring >= 60, sorted descending.
func (e *Engine) MatchVendor(name string) (int, float64, []entity.Suggestion) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, 0, nil
	}

	bestID, bestScore := 0, 0.0
	var suggestions []entity.Suggestion
	for _, v := range e.vendors {
		entryBest := 0.0
		for _, alias := range v.AllNames() {
			score := similarity(name, alias)
			if score > bestScore {
				bestScore = score
				bestID = v.ID
			}
			if score > entryBest {
				entryBest = score
			}
		}
		if entryBest >= suggestScore {
			suggestions = append(suggestions, entity.Suggestion{ID: v.ID, Name: v.CanonicalName, Score: entryBest})
		}
	}
	return bestID, bestScore, capSuggestions(suggestions)
}

// MatchProject is symmetric to MatchVendor over project names and codes.
func (e *Engine) MatchProject(name string) (int, float64, []entity.Suggestion) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, 0, nil
	}

	bestID, bestScore := 0, 0.0
	var suggestions []entity.Suggestion
	for _, p := range e.projects {
		entryBest := 0.0
		for _, alias := range p.AllNames() {
			score := similarity(name, alias)
			if score > bestScore {
				bestScore = score
				bestID = p.ID
			}
			if score > entryBest {
				entryBest = score
			}
		}
		if entryBest >= suggestScore {
			suggestions = append(suggestions, entity.Suggestion{ID: p.ID, Name: p.Name, Score: entryBest})
		}
	}
	return bestID, bestScore, capSuggestions(suggestions)
}

// ReconcileInvoice applies the decision tiers to one record, mutating its
// normalized view, status, and suggestion list. It reports whether anything
// changed. Status only ever moves needs_review -> auto_matched; manual and
// ignored records are left alone.
func (e *Engine) ReconcileInvoice(inv *entity.Invoice) bool {
	updated := false

	if vendorName, ok := inv.Extracted.String(extract.FieldVendorName); ok {
		id, score, suggestions := e.MatchVendor(vendorName)
		switch {
		case score >= autoMatchScore:
			inv.Normalized.VendorID = &id
			inv.Normalized.VendorName = e.vendorName(id)
			if constants.EngineCanTransition(inv.ReconciliationStatus, constants.StatusAutoMatched) {
				inv.ReconciliationStatus = constants.StatusAutoMatched
			}
			updated = true
			e.logger.Info("vendor auto-matched",
				"invoice_id", inv.ID, "vendor_id", id, "score", score)
		case score >= suggestScore:
			ensureSuggestions(inv).Vendors = suggestions
			updated = true
		}
	}

	if projectName, ok := projectQuery(inv.Extracted); ok {
		id, score, suggestions := e.MatchProject(projectName)
		switch {
		case score >= autoMatchScore:
			inv.Normalized.ProjectID = &id
			inv.Normalized.ProjectName = e.projectName(id)
			updated = true
			e.logger.Info("project auto-matched",
				"invoice_id", inv.ID, "project_id", id, "score", score)
		case score >= suggestScore:
			ensureSuggestions(inv).Projects = suggestions
			updated = true
		}
	}

	// amounts and dates need no fuzzy matching; copy them verbatim
	if total, ok := inv.Extracted.Float(extract.FieldTotalAmount); ok {
		inv.Normalized.TotalAmount = &total
		if currency, ok := inv.Extracted.String(extract.FieldCurrency); ok {
			inv.Normalized.Currency = currency
		}
		updated = true
	}
	if date, ok := inv.Extracted.String(extract.FieldDate); ok {
		inv.Normalized.Date = date
		updated = true
	}

	return updated
}

func (e *Engine) vendorName(id int) string {
	for _, v := range e.vendors {
		if v.ID == id {
			return v.CanonicalName
		}
	}
	return ""
}

func (e *Engine) projectName(id int) string {
	for _, p := range e.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// similarity is a normalized edit-distance ratio on the 0-100 scale,
// case-folded.
func similarity(a, b string) float64 {
	return levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), levenshtein.NewParams()) * scoreResolution
}

func capSuggestions(s []entity.Suggestion) []entity.Suggestion {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Score > s[j].Score })
	if len(s) > maxSuggestions {
		s = s[:maxSuggestions]
	}
	return s
}

func ensureSuggestions(inv *entity.Invoice) *entity.Suggestions {
	if inv.Extra.Suggestions == nil {
		inv.Extra.Suggestions = &entity.Suggestions{}
	}
	return inv.Extra.Suggestions
}

func projectQuery(fields extract.FieldMap) (string, bool) {
	if name, ok := fields.String("project_name"); ok {
		return name, true
	}
	return fields.String("project_code")
}
