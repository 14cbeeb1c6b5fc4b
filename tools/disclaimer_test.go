package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessDisclaimerResearch(t *testing.T) {
	queries := []string{
		"What is the limitation period for defamation in Kenya?",
		"Explain the doctrine of adverse possession",
		"Requirements for a valid will under the Law of Succession Act",
	}
	for _, q := range queries {
		level, text := AssessDisclaimer(q)
		assert.Equal(t, LevelResearch, level, "query: %s", q)
		assert.Contains(t, text, "research purposes only")
	}
}

func TestAssessDisclaimerBorderline(t *testing.T) {
	queries := []string{
		"My employer has not paid overtime for three months",
		"I was arrested last week without a warrant",
		"What can I do about a noisy neighbour",
	}
	for _, q := range queries {
		level, text := AssessDisclaimer(q)
		assert.Equal(t, LevelBorderline, level, "query: %s", q)
		assert.Contains(t, text, "Research Context Notice")
	}
}

func TestAssessDisclaimerSpecificAdvice(t *testing.T) {
	queries := []string{
		"Should I sign this tenancy agreement?",
		"Do I have a case against the county government?",
		"Will I win if I appeal the ruling?",
		"Can they fire me for joining a union?",
		"ADVISE ME ON my divorce settlement",
	}
	for _, q := range queries {
		level, text := AssessDisclaimer(q)
		assert.Equal(t, LevelSpecificAdvice, level, "query: %s", q)
		assert.Contains(t, text, "Advocates Act (Cap. 16)")
	}
}

func TestAssessDisclaimerAdviceOutranksBorderline(t *testing.T) {
	// Contains both a borderline signal ("my employer") and a strong
	// advice signal ("can i sue"); the strong signal wins
	level, _ := AssessDisclaimer("Can I sue my employer for unfair dismissal?")
	assert.Equal(t, LevelSpecificAdvice, level)
}
