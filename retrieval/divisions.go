package retrieval

import "strings"

// DivisionRule maps a cluster of query keywords to the specialist court
// division whose case law should surface first for that vocabulary
type DivisionRule struct {
	Keywords []string
	Division string
}

// DivisionRouter infers the most relevant court division from query text.
// Rules are held in a fixed priority order; when two rules match the same
// number of keywords, the earlier rule wins. The router is read-only after
// construction and safe for concurrent use.
type DivisionRouter struct {
	rules []DivisionRule
}

// NewDivisionRouter builds a router from ordered rules
func NewDivisionRouter(rules []DivisionRule) *DivisionRouter {
	return &DivisionRouter{rules: rules}
}

// NewKenyanDivisionRouter returns the topic-to-division routing rules for
// the Kenyan court system
func NewKenyanDivisionRouter() *DivisionRouter {
	return NewDivisionRouter([]DivisionRule{
		{
			Keywords: []string{
				"land", "property", "title deed", "tenure", "elc", "nlc", "lease",
				"eviction", "trespass", "adverse possession", "compulsory acquisition",
				"land registration", "community land",
			},
			Division: "Environment and Land Court",
		},
		{
			Keywords: []string{
				"employment", "labour", "labor", "elrc", "dismissal", "unfair termination",
				"retrenchment", "redundancy", "collective bargaining", "trade union",
				"salary", "wages", "workplace", "employer", "employee",
			},
			Division: "Employment and Labour Relations Court",
		},
		{
			Keywords: []string{
				"constitutional", "petition", "article", "fundamental rights", "bill of rights",
				"chapter 4", "enforcement", "dignity", "equality", "discrimination",
				"fair trial", "arbitrary", "detention",
			},
			Division: "High Court",
		},
		{
			Keywords: []string{
				"family", "divorce", "matrimonial", "custody", "guardianship",
				"maintenance", "succession", "intestate", "probate", "marriage",
				"domestic violence",
			},
			Division: "High Court",
		},
		{
			Keywords: []string{
				"eac", "eacj", "east african community", "treaty", "african union", "au",
				"international law", "ratified", "human rights commission",
			},
			Division: "East African Court of Justice",
		},
	})
}

// Infer returns the division whose keyword cluster matches the query best.
// A rule must match at least one keyword to be considered; ties between
// rules resolve to the earlier rule. Returns ("", false) when nothing
// matches, so callers never route on a spurious inference.
func (r *DivisionRouter) Infer(query string) (string, bool) {
	queryLower := strings.ToLower(query)

	var best string
	bestCount := 0

	for _, rule := range r.rules {
		count := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(queryLower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = rule.Division
		}
	}

	if bestCount < 1 {
		return "", false
	}
	return best, true
}
