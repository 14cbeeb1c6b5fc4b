package tools

import (
	"regexp"
	"strings"
)

// DisclaimerLevel classifies how close a query is to requesting specific
// legal advice. Under the Advocates Act (Cap. 16) only enrolled advocates
// may give legal advice for a fee, so advice-seeking queries get a stronger
// notice and a referral.
type DisclaimerLevel string

const (
	LevelResearch       DisclaimerLevel = "research"
	LevelBorderline     DisclaimerLevel = "borderline"
	LevelSpecificAdvice DisclaimerLevel = "specific_advice"
)

// Strong signals: very likely requesting specific personal legal advice
var specificAdvicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bshould i\b`),
	regexp.MustCompile(`\bwill i win\b`),
	regexp.MustCompile(`\bdo i have a case\b`),
	regexp.MustCompile(`\bam i liable\b`),
	regexp.MustCompile(`\bam i guilty\b`),
	regexp.MustCompile(`\bwhat should i do\b`),
	regexp.MustCompile(`\bcan i be arrested\b`),
	regexp.MustCompile(`\bcan they (fire|dismiss|sue|arrest|charge) me\b`),
	regexp.MustCompile(`\bis my (contract|lease|agreement|will|deed|marriage) valid\b`),
	regexp.MustCompile(`\bshould (my client|he|she|they)\b`),
	regexp.MustCompile(`\bwill (the court|judge|magistrate) (rule|decide|find)\b`),
	regexp.MustCompile(`\bdo i need (a lawyer|an advocate|legal representation)\b`),
	regexp.MustCompile(`\bhow much (compensation|damages) will i get\b`),
	regexp.MustCompile(`\bwhat are my chances\b`),
	regexp.MustCompile(`\bcan i (win|succeed|appeal|sue)\b`),
	regexp.MustCompile(`\bis it worth (suing|appealing|filing)\b`),
	regexp.MustCompile(`\bshould i plead (guilty|not guilty)\b`),
	regexp.MustCompile(`\bwhat (sentence|penalty|fine) will i face\b`),
	regexp.MustCompile(`\badvise me on\b`),
	regexp.MustCompile(`\bgive me legal advice\b`),
}

// Weaker signals: general questions with personal framing
var borderlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bmy (employer|landlord|tenant|bank|wife|husband|partner|neighbour)\b`),
	regexp.MustCompile(`\bi (was|am being|have been) (fired|arrested|evicted|sued|charged)\b`),
	regexp.MustCompile(`\bmy (case|matter|dispute|situation|problem)\b`),
	regexp.MustCompile(`\bwhat (can|do) i do\b`),
	regexp.MustCompile(`\bmy rights\b`),
	regexp.MustCompile(`\bi want to (sue|claim|appeal|petition|file)\b`),
	regexp.MustCompile(`\bi (signed|entered into|agreed to)\b`),
	regexp.MustCompile(`\bthey are (threatening|refusing|demanding)\b`),
	regexp.MustCompile(`\bare they allowed to\b`),
	regexp.MustCompile(`\bcan my (employer|landlord|bank)\b`),
}

const specificAdviceText = "⚠️ **Legal Advice Notice**\n\n" +
	"Your question appears to be seeking specific legal advice about your " +
	"personal situation. This service is a **research tool only** — " +
	"it cannot and does not give legal advice, and any information provided " +
	"should **not** be relied on as legal advice.\n\n" +
	"Under the **Advocates Act (Cap. 16)**, only a duly enrolled advocate " +
	"may give legal advice for a fee. For your specific situation, please " +
	"consult a qualified Kenyan advocate. If cost is a barrier:\n" +
	"- **Law Society of Kenya (LSK)** pro bono referral: +254 20 3874 481\n" +
	"- **Kituo Cha Sheria** (free legal aid): +254 722 314 508\n" +
	"- **FIDA Kenya** (women's rights): +254 20 2721784\n" +
	"- **NCAJ Legal Aid Fund** — apply through any High Court registry"

const borderlineText = "ℹ️ **Research Context Notice**\n\n" +
	"Your question has a personal dimension. The analysis below is based on " +
	"general Kenyan law and is provided for **research purposes only**. " +
	"It does not constitute legal advice for your specific situation. " +
	"For advice on your particular circumstances, consult a qualified " +
	"Kenyan advocate."

const researchText = "This information is for legal research purposes only and does not " +
	"constitute legal advice. Consult a qualified Kenyan advocate for " +
	"professional legal guidance."

// AssessDisclaimer classifies a query and returns the disclaimer level with
// the notice text to attach to the response
func AssessDisclaimer(query string) (DisclaimerLevel, string) {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, pattern := range specificAdvicePatterns {
		if pattern.MatchString(q) {
			return LevelSpecificAdvice, specificAdviceText
		}
	}

	for _, pattern := range borderlinePatterns {
		if pattern.MatchString(q) {
			return LevelBorderline, borderlineText
		}
	}

	return LevelResearch, researchText
}
