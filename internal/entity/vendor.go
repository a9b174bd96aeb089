package entity

// Vendor is one canonical vendor registry entry. Aliases are alternate names
// the vendor appears under on documents.
type Vendor struct {
	ID            int            `json:"id"`
	CanonicalName string         `json:"canonical_name"`
	Aliases       []string       `json:"aliases,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
}

// AllNames returns the canonical name plus every alias.
func (v Vendor) AllNames() []string {
	names := make([]string, 0, 1+len(v.Aliases))
	names = append(names, v.CanonicalName)
	names = append(names, v.Aliases...)
	return names
}

// Project is one canonical project registry entry. Codes are short
// identifiers projects are referenced by on documents.
type Project struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Codes []string       `json:"codes,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// AllNames returns the project name plus every code.
func (p Project) AllNames() []string {
	names := make([]string, 0, 1+len(p.Codes))
	names = append(names, p.Name)
	names = append(names, p.Codes...)
	return names
}
