package processing

import (
	"crypto/sha256"
	"fmt"
	"log"
	"regexp"
	"strings"

	"kenyalegal-backend/models"
)

const (
	// DefaultChunkSize is the target chunk length in characters
	DefaultChunkSize = 1000

	// DefaultMinSectionSize is the threshold below which adjacent sections
	// are merged to avoid tiny low-value chunks (single-line headers etc.)
	DefaultMinSectionSize = 200
)

// Chunker splits raw legal text into retrieval-ready chunks. Splitting
// respects legal structure (Articles, Sections, Parts, numbered paragraphs)
// rather than cutting at arbitrary character offsets.
//
// Chunking is a pure transform: the same input always produces the same
// chunk sequence and the same chunk IDs.
type Chunker struct {
	chunkSize      int
	minSectionSize int
}

// ChunkerOption is a functional option for Chunker
type ChunkerOption func(*Chunker)

// WithChunkSize sets the target chunk size in characters
func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithMinSectionSize sets the minimum standalone section size
func WithMinSectionSize(size int) ChunkerOption {
	return func(c *Chunker) {
		if size > 0 {
			c.minSectionSize = size
		}
	}
}

// NewChunker creates a chunker with the default legal-aware configuration
func NewChunker(opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		chunkSize:      DefaultChunkSize,
		minSectionSize: DefaultMinSectionSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DocumentInput carries a raw document and the provenance metadata copied
// onto every chunk produced from it
type DocumentInput struct {
	DocumentID    string
	DocumentTitle string
	DocumentType  models.DocumentType
	Source        string
	Text          string
	Court         string
	Date          string
	Citation      string
	Metadata      map[string]interface{}
}

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	runsOfSpaces   = regexp.MustCompile(`[ \t]+`)
	pageOfPage     = regexp.MustCompile(`(?i)\n\s*Page\s+\d+\s+of\s+\d+\s*\n`)
	lonePageNumber = regexp.MustCompile(`\n\s*-\s*\d+\s*-\s*\n`)
	emDashSpacing  = regexp.MustCompile(`(\w)\s*\x{2014}\s*(\w)`)
)

// CleanText normalizes raw legal text: collapses excess whitespace, strips
// recurring pagination artifacts, and normalizes spacing around em-dashes.
// It is deterministic and loses no semantic content.
func CleanText(text string) string {
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = runsOfSpaces.ReplaceAllString(text, " ")

	// Page headers/footers common in scanned legal PDFs
	text = pageOfPage.ReplaceAllString(text, "\n")
	text = lonePageNumber.ReplaceAllString(text, "\n")

	// Replacement consumes the boundary letters, so a run like "a—b—c" needs
	// another pass for the second dash; iterate to a fixpoint
	for {
		spaced := emDashSpacing.ReplaceAllString(text, "$1 — $2")
		if spaced == text {
			break
		}
		text = spaced
	}

	return strings.TrimSpace(text)
}

// Structural boundary patterns, in priority order. The first pattern that
// yields more than one non-empty segment wins; patterns are never combined.
var sectionBoundaryPatterns = []*regexp.Regexp{
	// Constitution articles
	regexp.MustCompile(`\n\s*Article\s+\d+`),
	// Act sections
	regexp.MustCompile(`\n\s*Section\s+\d+`),
	// Parts and chapters
	regexp.MustCompile(`\n\s*(?:PART|Part|CHAPTER|Chapter)\s+[IVXLCDM\d]+`),
	// Numbered paragraphs in judgments
	regexp.MustCompile(`\n\s*\d+\.\s+[A-Z]`),
}

// sectionLabelPattern matches a structural marker at the start of a line,
// used to label chunks with the section they open with
var sectionLabelPattern = regexp.MustCompile(
	`(?m)^(Article\s+\d+|Section\s+\d+|(?:PART|Part|CHAPTER|Chapter)\s+[IVXLCDM\d]+)`)

// splitBefore cuts text immediately before each match of re, keeping the
// matched marker attached to the segment it introduces
func splitBefore(text string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var segments []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			segments = append(segments, text[prev:loc[0]])
		}
		prev = loc[0]
	}
	segments = append(segments, text[prev:])
	return segments
}

// splitByLegalSections splits text at legal section boundaries, falling back
// to blank-line paragraphs when no legal structure is detected
func (c *Chunker) splitByLegalSections(text string) []string {
	for _, pattern := range sectionBoundaryPatterns {
		segments := trimNonEmpty(splitBefore(text, pattern))
		if len(segments) > 1 {
			return segments
		}
	}

	// Fallback: blank-line delimited paragraphs
	return trimNonEmpty(strings.Split(text, "\n\n"))
}

func trimNonEmpty(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mergeSmallSections accumulates adjacent sections too small to stand alone
func (c *Chunker) mergeSmallSections(sections []string) []string {
	var merged []string
	var buffer string

	for _, section := range sections {
		if len(buffer)+len(section) < c.minSectionSize {
			if buffer != "" {
				buffer += "\n\n" + section
			} else {
				buffer = section
			}
		} else {
			if buffer != "" {
				merged = append(merged, buffer)
			}
			buffer = section
		}
	}

	if buffer != "" {
		merged = append(merged, buffer)
	}

	return merged
}

// sentenceEnd marks a sentence boundary: terminal punctuation followed by
// whitespace. Splits happen after the punctuation, never inside a sentence.
var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// splitSentences splits text on sentence boundaries, keeping the terminal
// punctuation with its sentence
func splitSentences(text string) []string {
	locs := sentenceEnd.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var sentences []string
	prev := 0
	for _, loc := range locs {
		// loc[0]+1 is just past the punctuation character
		sentences = append(sentences, strings.TrimSpace(text[prev:loc[0]+1]))
		prev = loc[1]
	}
	if prev < len(text) {
		sentences = append(sentences, strings.TrimSpace(text[prev:]))
	}
	return sentences
}

// splitLargeSection breaks a section exceeding chunkSize into pieces at
// sentence boundaries. A single sentence longer than chunkSize becomes its
// own piece, unsplit.
func (c *Chunker) splitLargeSection(text string) []string {
	if len(text) <= c.chunkSize {
		return []string{text}
	}

	var pieces []string
	var current string

	for _, sentence := range splitSentences(text) {
		joined := len(current) + len(sentence)
		if current != "" {
			joined++ // separator
		}
		if joined > c.chunkSize {
			if current != "" {
				pieces = append(pieces, strings.TrimSpace(current))
			}
			current = sentence
		} else {
			if current != "" {
				current += " " + sentence
			} else {
				current = sentence
			}
		}
	}

	if current != "" {
		pieces = append(pieces, strings.TrimSpace(current))
	}

	return pieces
}

// ChunkDocument converts one document's raw text into an ordered chunk
// sequence. An empty result means the document had no usable content after
// cleaning; that is a reported condition, not an error.
func (c *Chunker) ChunkDocument(input DocumentInput) []models.Chunk {
	cleaned := CleanText(input.Text)
	if cleaned == "" {
		log.Printf("Warning: Empty document after cleaning: %s", input.DocumentID)
		return nil
	}

	sections := c.splitByLegalSections(cleaned)
	sections = c.mergeSmallSections(sections)

	var pieces []string
	for _, section := range sections {
		pieces = append(pieces, c.splitLargeSection(section)...)
	}

	chunks := make([]models.Chunk, 0, len(pieces))
	total := len(pieces)

	for idx, text := range pieces {
		section := sectionLabelPattern.FindString(text)

		chunks = append(chunks, models.Chunk{
			ChunkID:       ChunkID(input.DocumentID, idx),
			DocumentID:    input.DocumentID,
			DocumentTitle: input.DocumentTitle,
			DocumentType:  input.DocumentType,
			Source:        input.Source,
			Text:          text,
			Section:       section,
			Court:         input.Court,
			Date:          input.Date,
			Citation:      input.Citation,
			ChunkIndex:    idx,
			TotalChunks:   total,
			Metadata:      input.Metadata,
		})
	}

	title := input.DocumentTitle
	if len(title) > 50 {
		title = title[:50]
	}
	log.Printf("Chunked %q into %d chunks", title, len(chunks))

	return chunks
}

// ChunkID generates a deterministic chunk identifier from the document ID
// and the chunk's position
func ChunkID(documentID string, chunkIndex int) string {
	raw := fmt.Sprintf("%s:chunk:%d", documentID, chunkIndex)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum)[:16]
}

// DocumentID generates a deterministic document identifier from the source
// tag and the document's natural key (case number, FRBR URI, filename)
func DocumentID(source, identifier string) string {
	raw := fmt.Sprintf("%s:%s", source, identifier)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum)[:16]
}
