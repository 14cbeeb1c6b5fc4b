package tools

import (
	"sort"
	"strings"
)

// LimitationPeriod describes the limitation period for one cause of action
// under Kenyan law. Primary authority is the Limitation of Actions Act
// (Cap. 22), overridden by special statutes for specific claims.
type LimitationPeriod struct {
	CauseOfAction string   `json:"cause_of_action"`
	Period        string   `json:"period"`        // friendly string, e.g. "3 years"
	PeriodMonths  int      `json:"period_months"` // numeric months for sorting
	Statute       string   `json:"statute"`
	Section       string   `json:"section"`
	Notes         string   `json:"notes,omitempty"`
	Keywords      []string `json:"-"`
}

// LimitationMatch is one lookup result with its relevance score
type LimitationMatch struct {
	LimitationPeriod
	RelevanceScore int `json:"relevance_score"`
}

// LimitationResult is the full response of a limitation lookup
type LimitationResult struct {
	Query      string            `json:"query"`
	Matches    []LimitationMatch `json:"matches"`
	TotalFound int               `json:"total_found"`
	Disclaimer string            `json:"disclaimer"`
}

const limitationDisclaimer = "Limitation periods are subject to exceptions (minority, disability, " +
	"fraud, concealment). This tool provides general guidance only — " +
	"always verify the applicable period with a qualified Kenyan advocate " +
	"and check for any special statute governing your specific claim."

// limitationPeriods is ordered by period length ascending
var limitationPeriods = []LimitationPeriod{
	{
		CauseOfAction: "Election Petitions (Presidential)",
		Period:        "7 days",
		PeriodMonths:  0,
		Statute:       "Elections Act, No. 24 of 2011",
		Section:       "s. 75(1)",
		Notes: "7 days from the date the results are declared. " +
			"Filed in the Supreme Court under Article 163(3)(a) CoK.",
		Keywords: []string{"election", "presidential", "petition", "results"},
	},
	{
		CauseOfAction: "Election Petitions (Parliamentary & County Governor)",
		Period:        "28 days",
		PeriodMonths:  1,
		Statute:       "Elections Act, No. 24 of 2011",
		Section:       "s. 76",
		Notes:         "28 days from the date the results are published in the Gazette.",
		Keywords:      []string{"election", "parliamentary", "governor", "petition"},
	},
	{
		CauseOfAction: "Election Petitions (County Assembly Ward)",
		Period:        "28 days",
		PeriodMonths:  1,
		Statute:       "Elections Act, No. 24 of 2011",
		Section:       "s. 75(2)",
		Notes:         "Filed in the Magistrate Court within 28 days.",
		Keywords:      []string{"election", "ward", "county assembly", "petition"},
	},
	{
		CauseOfAction: "Judicial Review (Order 53 Applications)",
		Period:        "3 months (promptly)",
		PeriodMonths:  3,
		Statute:       "Law Reform Act (Cap. 26); Civil Procedure Rules 2010",
		Section:       "Order 53, r. 3(2) CPR; s. 8 Law Reform Act",
		Notes: "Must be brought 'promptly' and in any event within 3 months " +
			"of the decision or action complained of, unless the court " +
			"extends time for good reason. " +
			"Some statutory bodies have shorter notice periods.",
		Keywords: []string{"judicial review", "certiorari", "mandamus", "prohibition",
			"order 53", "quash", "declaration"},
	},
	{
		CauseOfAction: "Defamation (Libel & Slander)",
		Period:        "12 months",
		PeriodMonths:  12,
		Statute:       "Defamation Act (Cap. 36)",
		Section:       "s. 4",
		Notes: "Runs from the date of publication or utterance. " +
			"Significantly shorter than the general contract period.",
		Keywords: []string{"defamation", "libel", "slander", "reputation", "publication"},
	},
	{
		CauseOfAction: "Actions against the Government / Public Bodies",
		Period:        "12 months (written notice) + 3 years (suit)",
		PeriodMonths:  12,
		Statute:       "Government Proceedings Act (Cap. 40)",
		Section:       "s. 28 & 29",
		Notes: "Written notice of intention to sue must be given within 12 months. " +
			"The actual suit must still be filed within the relevant general period " +
			"(3 years for tort or contract). " +
			"Note: Constitutional petitions under Article 22 are not time-barred.",
		Keywords: []string{"government", "state", "public body", "county government", "authority"},
	},
	{
		CauseOfAction: "Fatal Accidents / Dependants' Claims",
		Period:        "3 years",
		PeriodMonths:  36,
		Statute:       "Fatal Accidents Act (Cap. 32); Law Reform Act (Cap. 26)",
		Section:       "s. 4 (Law Reform Act)",
		Notes: "3 years from the death of the deceased or from the date of knowledge " +
			"of the dependant. Brought by the personal representative.",
		Keywords: []string{"death", "fatal accident", "dependant", "deceased", "estate"},
	},
	{
		CauseOfAction: "Personal Injury (Tort)",
		Period:        "3 years",
		PeriodMonths:  36,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 4(2)",
		Notes: "Runs from the date the cause of action accrued, or the earliest date " +
			"on which the claimant had knowledge of the injury, the identity of " +
			"the defendant, and that the injury was attributable to the defendant's act.",
		Keywords: []string{"injury", "personal injury", "negligence", "accident", "bodily harm"},
	},
	{
		CauseOfAction: "Employment Disputes (Unfair Termination, Wages, etc.)",
		Period:        "3 years",
		PeriodMonths:  36,
		Statute:       "Employment Act, No. 11 of 2007",
		Section:       "s. 90",
		Notes: "3 years from the date the cause of action arose. Filed in the " +
			"Employment and Labour Relations Court (ELRC). " +
			"Trade dispute conciliation under the Labour Relations Act may " +
			"impose shorter notice periods before litigation.",
		Keywords: []string{"employment", "termination", "wages", "salary", "dismissal",
			"redundancy", "elrc", "labour", "unfair"},
	},
	{
		CauseOfAction: "Negligence (General Tort)",
		Period:        "3 years",
		PeriodMonths:  36,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 4(2)",
		Notes:         "Runs from accrual of cause of action.",
		Keywords:      []string{"negligence", "duty of care", "tort", "damage"},
	},
	{
		CauseOfAction: "Simple Contract (Written or Oral)",
		Period:        "6 years",
		PeriodMonths:  72,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 4(1)(a)",
		Notes: "Runs from the date the breach of contract occurred, " +
			"not from when the claimant discovers the breach.",
		Keywords: []string{"contract", "agreement", "breach", "payment", "debt",
			"service", "supply", "non-performance"},
	},
	{
		CauseOfAction: "Recovery of a Debt",
		Period:        "6 years",
		PeriodMonths:  72,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 4(1)(a)",
		Notes: "6 years from when the debt became payable. " +
			"Part payment or written acknowledgment restarts the clock.",
		Keywords: []string{"debt", "loan", "money", "repayment", "recover", "creditor"},
	},
	{
		CauseOfAction: "Fraud / Concealment",
		Period:        "6 years (from discovery)",
		PeriodMonths:  72,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 26",
		Notes: "Where the action is based on the fraud of the defendant, " +
			"or any fact relevant to the plaintiff's right has been " +
			"deliberately concealed, the period runs from the date " +
			"the plaintiff discovered the fraud or concealment.",
		Keywords: []string{"fraud", "deceit", "misrepresentation", "concealment", "forgery"},
	},
	{
		CauseOfAction: "Land / Recovery of Land",
		Period:        "12 years",
		PeriodMonths:  144,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 7",
		Notes: "12 years from the date the adverse possession commenced, or " +
			"from the date the right of action first accrued to any person " +
			"through whom the claimant claims. Special rules apply to " +
			"registered land under the Land Registration Act No. 3 of 2012.",
		Keywords: []string{"land", "property", "adverse possession", "trespass", "eviction",
			"title", "registration"},
	},
	{
		CauseOfAction: "Mortgage (Recovery of Mortgage Money)",
		Period:        "12 years",
		PeriodMonths:  144,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 19",
		Notes:         "12 years from the date on which the right to receive the money accrued.",
		Keywords:      []string{"mortgage", "charge", "security", "bank", "loan secured"},
	},
	{
		CauseOfAction: "Specialty Contract (Contract Under Seal / Deed)",
		Period:        "12 years",
		PeriodMonths:  144,
		Statute:       "Limitation of Actions Act (Cap. 22)",
		Section:       "s. 4(3)",
		Notes:         "Applies to contracts executed as deeds rather than simple contracts.",
		Keywords:      []string{"deed", "specialty contract", "contract under seal", "executed deed"},
	},
	{
		CauseOfAction: "Constitutional Petition (Enforcement of Fundamental Rights)",
		Period:        "No fixed limitation period",
		PeriodMonths:  9999,
		Statute:       "Constitution of Kenya 2010",
		Section:       "Article 22",
		Notes: "Article 22(3) directs the Chief Justice to make rules allowing " +
			"petitions to be filed 'without undue regard to procedural technicalities'. " +
			"However, courts may decline to grant relief where there has been " +
			"unreasonable delay causing prejudice (doctrine of laches applies).",
		Keywords: []string{"constitutional petition", "article 22", "fundamental rights",
			"bill of rights", "enforcement"},
	},
}

// CheckLimitation looks up limitation periods matching a free-text
// description of a legal claim. Keyword hits score 2, cause-of-action word
// hits score 1; the top five matches come back ranked by score.
func CheckLimitation(causeOfAction string) LimitationResult {
	queryLower := strings.ToLower(causeOfAction)

	var matches []LimitationMatch
	for _, entry := range limitationPeriods {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(queryLower, kw) {
				score += 2
			}
		}
		for _, word := range strings.Fields(strings.ToLower(entry.CauseOfAction)) {
			if strings.Contains(queryLower, word) {
				score++
				break
			}
		}

		if score > 0 {
			matches = append(matches, LimitationMatch{LimitationPeriod: entry, RelevanceScore: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})

	totalFound := len(matches)
	if len(matches) > 5 {
		matches = matches[:5]
	}

	return LimitationResult{
		Query:      causeOfAction,
		Matches:    matches,
		TotalFound: totalFound,
		Disclaimer: limitationDisclaimer,
	}
}

// AllLimitationPeriods returns the full reference table, ordered by period
// length ascending
func AllLimitationPeriods() []LimitationPeriod {
	out := make([]LimitationPeriod, len(limitationPeriods))
	copy(out, limitationPeriods)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PeriodMonths < out[j].PeriodMonths
	})
	return out
}
