package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferLandQueries(t *testing.T) {
	router := NewKenyanDivisionRouter()

	division, ok := router.Infer("land dispute over a lease in Kiambu")
	assert.True(t, ok)
	assert.Equal(t, "Environment and Land Court", division)

	division, ok = router.Infer("LAND EVICTION NOTICE")
	assert.True(t, ok)
	assert.Equal(t, "Environment and Land Court", division)
}

func TestInferEmploymentQueries(t *testing.T) {
	router := NewKenyanDivisionRouter()

	division, ok := router.Infer("unfair termination of an employee")
	assert.True(t, ok)
	assert.Equal(t, "Employment and Labour Relations Court", division)
}

func TestInferConstitutionalQueries(t *testing.T) {
	router := NewKenyanDivisionRouter()

	division, ok := router.Infer("petition on equality and discrimination under article 27")
	assert.True(t, ok)
	assert.Equal(t, "High Court", division)
}

func TestInferRegionalQueries(t *testing.T) {
	router := NewKenyanDivisionRouter()

	division, ok := router.Infer("treaty obligations of the east african community")
	assert.True(t, ok)
	assert.Equal(t, "East African Court of Justice", division)
}

func TestInferHighestCountWins(t *testing.T) {
	// Three employment keywords outrank the single land keyword even though
	// the land rule has higher priority
	router := NewKenyanDivisionRouter()

	division, ok := router.Infer("employment dismissal and redundancy on farm land")
	assert.True(t, ok)
	assert.Equal(t, "Employment and Labour Relations Court", division)
}

func TestInferTieGoesToEarlierRule(t *testing.T) {
	router := NewKenyanDivisionRouter()

	// One keyword each from the land and employment clusters
	division, ok := router.Infer("land workplace")
	assert.True(t, ok)
	assert.Equal(t, "Environment and Land Court", division)
}

func TestInferNoMatch(t *testing.T) {
	router := NewKenyanDivisionRouter()

	division, ok := router.Infer("banking regulation compliance")
	assert.False(t, ok)
	assert.Empty(t, division)

	division, ok = router.Infer("")
	assert.False(t, ok)
	assert.Empty(t, division)
}
