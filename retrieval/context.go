package retrieval

import (
	"fmt"
	"strings"

	"kenyalegal-backend/models"
)

// DefaultMaxContextLength bounds the assembled context block, sized for the
// generation model's context window
const DefaultMaxContextLength = 12000

// contextDelimiter separates sources inside the assembled block
const contextDelimiter = "\n---\n"

// ContextAssembler formats a ranked result list into a bounded text block
// for the generation step. Each source is introduced by a header carrying
// title, section, citation, court, date, and a human-readable authority
// label, so the model can calibrate its reliance on each source's
// precedential value.
type ContextAssembler struct {
	maxLength int
}

// NewContextAssembler creates an assembler with the given character budget;
// a non-positive budget falls back to the default
func NewContextAssembler(maxLength int) *ContextAssembler {
	if maxLength <= 0 {
		maxLength = DefaultMaxContextLength
	}
	return &ContextAssembler{maxLength: maxLength}
}

// Assemble formats results in rank order. Once the next source would push
// the block past the budget, assembly stops; a source is included whole or
// not at all.
func (a *ContextAssembler) Assemble(results []models.RankedResult) string {
	var parts []string
	total := 0

	for i, result := range results {
		var sourceInfo []string
		if result.DocumentTitle != "" {
			sourceInfo = append(sourceInfo, result.DocumentTitle)
		}
		if result.Section != "" {
			sourceInfo = append(sourceInfo, result.Section)
		}
		if result.Citation != "" {
			sourceInfo = append(sourceInfo, result.Citation)
		}
		if result.Court != "" {
			sourceInfo = append(sourceInfo, result.Court)
		}
		if result.Date != "" {
			sourceInfo = append(sourceInfo, result.Date)
		}

		sourceLabel := "Unknown Source"
		if len(sourceInfo) > 0 {
			sourceLabel = strings.Join(sourceInfo, " | ")
		}

		chunk := fmt.Sprintf("[Source %d: %s | Authority: %s]\n%s\n",
			i+1, sourceLabel, AuthorityLabel(result.HierarchyWeight), result.Text)

		// The delimiter joining this source to the previous one counts
		// against the budget too
		cost := len(chunk)
		if len(parts) > 0 {
			cost += len(contextDelimiter)
		}
		if total+cost > a.maxLength {
			break
		}

		parts = append(parts, chunk)
		total += cost
	}

	return strings.Join(parts, contextDelimiter)
}

// AuthorityLabel converts a hierarchy weight into the label shown in source
// headers
func AuthorityLabel(weight float64) string {
	switch {
	case weight >= 1.0:
		return "Supreme Court (binding)"
	case weight >= 0.85:
		return "Court of Appeal (binding on HC)"
	case weight >= 0.70:
		return "High Court / Specialist Court"
	case weight >= 0.60:
		return "Regional Court (persuasive)"
	case weight >= 0.40:
		return "Magistrate Court (persuasive)"
	default:
		return "Unknown"
	}
}
