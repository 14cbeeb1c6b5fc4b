package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLimitationDefamation(t *testing.T) {
	result := CheckLimitation("defamation")

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "Defamation (Libel & Slander)", result.Matches[0].CauseOfAction)
	assert.Equal(t, "12 months", result.Matches[0].Period)
	assert.Equal(t, "Defamation Act (Cap. 36)", result.Matches[0].Statute)
	assert.Contains(t, result.Disclaimer, "exceptions")
}

func TestCheckLimitationLandDispute(t *testing.T) {
	result := CheckLimitation("adverse possession of land")

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "Land / Recovery of Land", result.Matches[0].CauseOfAction)
	assert.Equal(t, "12 years", result.Matches[0].Period)
}

func TestCheckLimitationEmployment(t *testing.T) {
	result := CheckLimitation("unfair dismissal and unpaid wages")

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "Employment Disputes (Unfair Termination, Wages, etc.)", result.Matches[0].CauseOfAction)
	assert.Equal(t, "Employment Act, No. 11 of 2007", result.Matches[0].Statute)
}

func TestCheckLimitationRanksByScore(t *testing.T) {
	result := CheckLimitation("breach of contract and recovery of a debt")

	require.GreaterOrEqual(t, len(result.Matches), 2)
	for i := 1; i < len(result.Matches); i++ {
		assert.GreaterOrEqual(t, result.Matches[i-1].RelevanceScore, result.Matches[i].RelevanceScore)
	}
}

func TestCheckLimitationCapsAtFive(t *testing.T) {
	// A query hitting many entries still returns at most five matches,
	// with the true total reported separately
	result := CheckLimitation("contract debt land employment defamation negligence fraud petition")

	assert.Len(t, result.Matches, 5)
	assert.Greater(t, result.TotalFound, 5)
}

func TestCheckLimitationNoMatch(t *testing.T) {
	result := CheckLimitation("xyzzy")

	assert.Empty(t, result.Matches)
	assert.Zero(t, result.TotalFound)
	assert.NotEmpty(t, result.Disclaimer)
}

func TestAllLimitationPeriodsSorted(t *testing.T) {
	periods := AllLimitationPeriods()

	require.NotEmpty(t, periods)
	for i := 1; i < len(periods); i++ {
		assert.LessOrEqual(t, periods[i-1].PeriodMonths, periods[i].PeriodMonths)
	}
}
