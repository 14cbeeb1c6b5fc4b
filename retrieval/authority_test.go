package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorityWeightExactMatch(t *testing.T) {
	table := NewKenyanAuthorityTable()

	assert.InDelta(t, 1.00, table.Weight("Supreme Court"), 1e-9)
	assert.InDelta(t, 0.85, table.Weight("Court of Appeal"), 1e-9)
	assert.InDelta(t, 0.70, table.Weight("Environment and Land Court"), 1e-9)
	assert.InDelta(t, 0.40, table.Weight("Magistrate Court"), 1e-9)
}

func TestAuthorityWeightStatuteSentinel(t *testing.T) {
	// Non-judgment documents carry an empty court and a fixed mid-range weight
	table := NewKenyanAuthorityTable()
	assert.InDelta(t, 0.55, table.Weight(""), 1e-9)
	assert.InDelta(t, 0.55, table.Weight("   "), 1e-9)
}

func TestAuthorityWeightFuzzyMatch(t *testing.T) {
	table := NewKenyanAuthorityTable()

	// Scraped court names are free text; substring matching in either
	// direction must tolerate them
	assert.InDelta(t, 1.00, table.Weight("THE SUPREME COURT OF KENYA AT NAIROBI"), 1e-9)
	assert.InDelta(t, 0.70, table.Weight("High Court of Kenya at Mombasa, Commercial Division"), 1e-9)
	assert.InDelta(t, 0.70, table.Weight("environment and land court at eldoret"), 1e-9)
}

func TestAuthorityWeightUnknownDefault(t *testing.T) {
	table := NewKenyanAuthorityTable()
	assert.InDelta(t, DefaultAuthorityWeight, table.Weight("Rent Restriction Tribunal"), 1e-9)
}

func TestAuthorityWeightAliasOrderWins(t *testing.T) {
	// "Supreme Court" precedes lower-court entries, so a string containing
	// several court names resolves to the first table entry that matches
	table := NewKenyanAuthorityTable()
	assert.InDelta(t, 1.00, table.Weight("Appeal from the Supreme Court"), 1e-9)
}
