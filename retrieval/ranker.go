package retrieval

import (
	"sort"
	"strings"

	"kenyalegal-backend/models"
)

const (
	// keywordBoostIncrement is added once per legal marker token found in a
	// hit's text
	keywordBoostIncrement = 0.10

	// divisionBoost is added to hits from the division inferred for the query
	divisionBoost = 0.12
)

// legalMarkers are the substrings that identify a query token as a legal
// term worth exact-matching against hit text
var legalMarkers = []string{
	"article", "section", "act", "cap", "court", "appeal",
	"petition", "constitution", "schedule", "regulation",
	"gazette", "treaty", "judgment", "v.", "vs",
}

// Ranker turns raw vector-similarity hits into a final ordered result list.
//
// Stages, in fixed order:
//  1. keyword boost (additive, exact legal term matching)
//  2. court authority weighting (multiplicative)
//  3. division routing boost (additive, skipped under an explicit court filter)
//  4. stable sort by adjusted score, truncate
//
// The additive/multiplicative mix is deliberate: a highly relevant
// low-authority result is discounted proportionally, not capped, while
// term and division matches lift results regardless of their court.
//
// A Ranker is stateless between calls; concurrent queries may share one
// instance.
type Ranker struct {
	authorities *AuthorityTable
	divisions   *DivisionRouter
}

// NewRanker creates a ranker over the given authority table and division
// router. Both tables are injected so single-instance semantics live in the
// caller, not in package globals.
func NewRanker(authorities *AuthorityTable, divisions *DivisionRouter) *Ranker {
	return &Ranker{
		authorities: authorities,
		divisions:   divisions,
	}
}

// Rank scores and orders hits for a query, returning at most rerankK
// results. An explicit court filter disables division routing, since the
// caller has already narrowed the court themselves. Empty hits yield an
// empty result; the caller decides whether to fall back to an ungrounded
// answer path.
func (r *Ranker) Rank(query string, hits []models.SearchHit, rerankK int, explicitCourt string) []models.RankedResult {
	if len(hits) == 0 {
		return nil
	}

	results := make([]models.RankedResult, len(hits))
	for i, hit := range hits {
		results[i] = models.RankedResult{
			SearchHit:     hit,
			AdjustedScore: hit.Score,
		}
	}

	r.applyKeywordBoost(query, results)
	r.applyAuthorityWeight(results)

	if explicitCourt == "" {
		if division, ok := r.divisions.Infer(query); ok {
			r.applyDivisionBoost(results, division)
		}
	}

	// Stable: exact ties keep the vector index's original order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AdjustedScore > results[j].AdjustedScore
	})

	if rerankK > 0 && len(results) > rerankK {
		results = results[:rerankK]
	}

	return results
}

// applyKeywordBoost adds a fixed increment for every legal marker token from
// the query found in a hit's text, plus a doubled increment when the whole
// query appears verbatim
func (r *Ranker) applyKeywordBoost(query string, results []models.RankedResult) {
	queryLower := strings.ToLower(query)

	// Distinct tokens only: a marker repeated in the query boosts once
	var legalKeywords []string
	seen := make(map[string]bool)
	for _, term := range strings.Fields(queryLower) {
		if seen[term] {
			continue
		}
		seen[term] = true
		for _, marker := range legalMarkers {
			if strings.Contains(term, marker) {
				legalKeywords = append(legalKeywords, term)
				break
			}
		}
	}

	for i := range results {
		textLower := strings.ToLower(results[i].Text)
		boost := 0.0

		for _, keyword := range legalKeywords {
			if strings.Contains(textLower, keyword) {
				boost += keywordBoostIncrement
			}
		}

		// Exact phrase presence counts double
		if len(queryLower) > 15 && strings.Contains(textLower, queryLower) {
			boost += keywordBoostIncrement * 2
		}

		results[i].AdjustedScore += boost
		results[i].KeywordBoost = boost
	}
}

// applyAuthorityWeight multiplies each result's running score by its court's
// precedential weight
func (r *Ranker) applyAuthorityWeight(results []models.RankedResult) {
	for i := range results {
		weight := r.authorities.Weight(results[i].Court)
		results[i].AdjustedScore *= weight
		results[i].HierarchyWeight = weight
	}
}

// applyDivisionBoost adds a fixed boost to results from the inferred court
// division. Matching is the same loose bidirectional substring check used
// for authority lookup, for the same reason: scraped court names are free
// text. An empty court matches trivially, so statutes and other courtless
// sources stay competitive in division-specific queries.
func (r *Ranker) applyDivisionBoost(results []models.RankedResult, division string) {
	divisionLower := strings.ToLower(division)

	for i := range results {
		courtLower := strings.ToLower(strings.TrimSpace(results[i].Court))
		if strings.Contains(courtLower, divisionLower) || strings.Contains(divisionLower, courtLower) {
			results[i].AdjustedScore += divisionBoost
			results[i].DivisionBoost = divisionBoost
		}
	}
}
