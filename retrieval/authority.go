package retrieval

import "strings"

// DefaultAuthorityWeight is the fallback weight for court names not present
// in the table
const DefaultAuthorityWeight = 0.50

// AuthorityEntry maps a court name or alias to its precedential weight.
// Weights are in [0, 1]; a higher weight means the document carries more
// binding authority and should surface above lower-court results.
type AuthorityEntry struct {
	Court  string
	Weight float64
}

// AuthorityTable holds the court hierarchy as an ordered list. Order matters:
// fuzzy lookups take the first matching entry, so more specific aliases must
// come before generic ones. The table is read-only after construction and
// safe for concurrent use.
type AuthorityTable struct {
	entries []AuthorityEntry
	exact   map[string]float64
}

// NewAuthorityTable builds a table from ordered entries
func NewAuthorityTable(entries []AuthorityEntry) *AuthorityTable {
	exact := make(map[string]float64, len(entries))
	for _, e := range entries {
		if _, ok := exact[e.Court]; !ok {
			exact[e.Court] = e.Weight
		}
	}
	return &AuthorityTable{entries: entries, exact: exact}
}

// NewKenyanAuthorityTable returns the court hierarchy under Article 163(7)
// of the Constitution of Kenya 2010: Supreme Court judgments bind all courts,
// Court of Appeal binds the High Court and below, specialist courts of record
// rank with the High Court for their jurisdiction, and magistrate decisions
// are persuasive only. The empty-string sentinel covers non-judgment
// documents (statutes, treaties), treated as authoritative mid-range.
func NewKenyanAuthorityTable() *AuthorityTable {
	return NewAuthorityTable([]AuthorityEntry{
		// Apex court, binding on all courts
		{"Supreme Court", 1.00},
		{"Supreme Court of Kenya", 1.00},

		// Second-highest, binding on High Court and below
		{"Court of Appeal", 0.85},
		{"Court of Appeal of Kenya", 0.85},

		// High Court divisions (co-equal authority)
		{"High Court", 0.70},
		{"High Court of Kenya", 0.70},
		{"Constitutional Court", 0.70},
		{"Constitutional and Human Rights Division", 0.70},
		{"Commercial Court", 0.70},
		{"Family Court", 0.70},

		// Specialist courts of record
		{"Employment and Labour Relations Court", 0.70},
		{"ELRC", 0.70},
		{"Environment and Land Court", 0.70},
		{"ELC", 0.70},

		// Regional courts, persuasive authority in Kenya
		{"East African Court of Justice", 0.65},
		{"EACJ", 0.65},
		{"African Court on Human and Peoples' Rights", 0.60},

		// Subordinate courts
		{"Magistrate Court", 0.40},
		{"Magistrates Court", 0.40},
		{"Chief Magistrate Court", 0.42},
		{"Senior Resident Magistrate", 0.40},
		{"Principal Magistrate", 0.41},

		// Non-judgment documents (statutes, treaties)
		{"", 0.55},
	})
}

// Weight looks up a court's authority weight. Exact match wins; otherwise the
// first entry whose name is a case-insensitive substring of the court field
// (or vice versa) applies. Scraped court names are free text, so the fuzzy
// pass is deliberate. Unknown courts get DefaultAuthorityWeight.
func (t *AuthorityTable) Weight(court string) float64 {
	court = strings.TrimSpace(court)

	if w, ok := t.exact[court]; ok {
		return w
	}

	courtLower := strings.ToLower(court)
	for _, e := range t.entries {
		if e.Court == "" {
			continue
		}
		known := strings.ToLower(e.Court)
		if strings.Contains(courtLower, known) || strings.Contains(known, courtLower) {
			return e.Weight
		}
	}

	return DefaultAuthorityWeight
}
