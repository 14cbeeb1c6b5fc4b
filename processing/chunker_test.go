package processing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenyalegal-backend/models"
)

func constitutionInput(text string) DocumentInput {
	return DocumentInput{
		DocumentID:    DocumentID("kenya_law", "constitution-2010"),
		DocumentTitle: "Constitution of Kenya, 2010",
		DocumentType:  models.DocTypeConstitution,
		Source:        "kenya_law",
		Text:          text,
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses excess newlines",
			input: "first paragraph\n\n\n\n\nsecond paragraph",
			want:  "first paragraph\n\nsecond paragraph",
		},
		{
			name:  "collapses runs of spaces and tabs",
			input: "the  court \t held",
			want:  "the court held",
		},
		{
			name:  "strips page headers",
			input: "before\nPage 3 of 12\nafter",
			want:  "before\nafter",
		},
		{
			name:  "strips lone page number lines",
			input: "before\n- 7 -\nafter",
			want:  "before\nafter",
		},
		{
			name:  "normalizes em-dash spacing",
			input: "land—tenure",
			want:  "land — tenure",
		},
		{
			name:  "normalizes consecutive em-dashes",
			input: "freehold—leasehold—customary",
			want:  "freehold — leasehold — customary",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n text \n ",
			want:  "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanTextDeterministic(t *testing.T) {
	input := "Page 1 of 2\nArticle 1   The Republic\n\n\n\nArticle 2  Supremacy"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestChunkDocumentEmptyAfterCleaning(t *testing.T) {
	c := NewChunker()
	chunks := c.ChunkDocument(constitutionInput("   \n\n \t \n "))
	assert.Empty(t, chunks)
}

func TestChunkDocumentSplitsOnArticles(t *testing.T) {
	text := "PREAMBLE\nWe, the people of Kenya, acknowledging the supremacy of the Almighty God of all creation, adopt this Constitution.\n" +
		"\nArticle 26\nEvery person has the right to life. The life of a person begins at conception. A person shall not be deprived of life intentionally, except to the extent authorised by this Constitution or other written law.\n" +
		"\nArticle 27\nEvery person is equal before the law and has the right to equal protection and equal benefit of the law. Equality includes the full and equal enjoyment of all rights and fundamental freedoms. Women and men have the right to equal treatment.\n" +
		"\nArticle 28\nEvery person has inherent dignity and the right to have that dignity respected and protected. The State shall not limit this right except as provided under Article 24 of this Constitution and only to the extent that the limitation is reasonable."

	c := NewChunker()
	chunks := c.ChunkDocument(constitutionInput(text))
	require.NotEmpty(t, chunks)

	var labelled []string
	for _, chunk := range chunks {
		if chunk.Section != "" {
			labelled = append(labelled, chunk.Section)
		}
	}
	assert.Contains(t, labelled, "Article 27")
}

func TestChunkDocumentIndexInvariants(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&sb, "\nSection %d\nA person who contravenes this section commits an offence and is liable on conviction to a fine not exceeding one million shillings or to imprisonment for a term not exceeding two years, or to both such fine and imprisonment as the court may determine.\n", i)
	}

	c := NewChunker()
	chunks := c.ChunkDocument(DocumentInput{
		DocumentID:   DocumentID("laws_africa", "/akn/ke/act/2012/12"),
		DocumentType: models.DocTypeAct,
		Source:       "laws_africa",
		Text:         sb.String(),
	})
	require.NotEmpty(t, chunks)

	total := chunks[0].TotalChunks
	assert.Equal(t, len(chunks), total)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.ChunkIndex)
		assert.Equal(t, total, chunk.TotalChunks)
		assert.NotEmpty(t, chunk.Text)
	}
}

func TestChunkDocumentDeterministicIDs(t *testing.T) {
	text := "Article 40\nSubject to Article 65, every person has the right, either individually or in association with others, to acquire and own property of any description and in any part of Kenya."

	c := NewChunker()
	first := c.ChunkDocument(constitutionInput(text))
	second := c.ChunkDocument(constitutionInput(text))
	require.Equal(t, len(first), len(second))

	for i := range first {
		assert.Equal(t, first[i].ChunkID, second[i].ChunkID)
	}
}

func TestChunkDocumentShortDocumentSingleChunk(t *testing.T) {
	c := NewChunker()
	chunks := c.ChunkDocument(constitutionInput("Gazette Notice No. 4.\nAppointment revoked."))
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
	assert.Equal(t, 1, chunks[0].TotalChunks)
}

func TestChunkDocumentRespectsChunkSize(t *testing.T) {
	// One oversized section built from short sentences
	var sb strings.Builder
	sb.WriteString("Section 3\n")
	for i := 0; i < 60; i++ {
		sb.WriteString("The registrar shall keep a register of all documents presented for registration under this Act. ")
	}

	c := NewChunker(WithChunkSize(500))
	chunks := c.ChunkDocument(DocumentInput{
		DocumentID:   DocumentID("laws_africa", "/akn/ke/act/1963/300"),
		DocumentType: models.DocTypeAct,
		Source:       "laws_africa",
		Text:         sb.String(),
	})
	require.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Text), 500)
	}
}

func TestChunkDocumentNeverSplitsASentence(t *testing.T) {
	// A single sentence longer than the chunk size must survive intact
	long := "The court holds that " + strings.Repeat("the doctrine of adverse possession ", 30) + "applies."
	c := NewChunker(WithChunkSize(200))

	chunks := c.ChunkDocument(DocumentInput{
		DocumentID:   DocumentID("kenya_law", "civil-appeal-2019-112"),
		DocumentType: models.DocTypeJudgment,
		Source:       "kenya_law",
		Text:         long,
	})
	require.Len(t, chunks, 1)
	assert.Greater(t, len(chunks[0].Text), 200)
}

func TestChunkDocumentFallsBackToParagraphs(t *testing.T) {
	// No Article/Section/Part markers anywhere
	text := "The plaintiff sued the defendant for breach of contract and sought damages together with interest and costs of the suit as particularised in the plaint filed before this honourable court on diverse dates.\n\n" +
		"The defendant denied liability in its statement of defence, contending that the agreement relied upon was void for want of consideration and had in any event been frustrated by supervening events.\n\n" +
		"Having considered the pleadings and the submissions of counsel, judgment is entered for the plaintiff in the sum claimed together with costs and interest at court rates from the date of filing suit until payment in full."

	c := NewChunker(WithMinSectionSize(100))
	chunks := c.ChunkDocument(DocumentInput{
		DocumentID:   DocumentID("kenya_law", "hccc-2021-44"),
		DocumentType: models.DocTypeJudgment,
		Source:       "kenya_law",
		Text:         text,
	})
	require.Greater(t, len(chunks), 1)
}

func TestChunkDocumentMergesSmallSections(t *testing.T) {
	// Tiny numbered paragraphs should be merged rather than emitted alone
	text := "1. Introduction.\n2. Background.\n3. Analysis.\n4. Disposition."

	c := NewChunker()
	chunks := c.ChunkDocument(DocumentInput{
		DocumentID:   DocumentID("kenya_law", "petition-2020-5"),
		DocumentType: models.DocTypeJudgment,
		Source:       "kenya_law",
		Text:         text,
	})
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0].Text, "Disposition")
}

func TestChunkDocumentCopiesMetadata(t *testing.T) {
	c := NewChunker()
	chunks := c.ChunkDocument(DocumentInput{
		DocumentID:    DocumentID("kenya_law", "petition-12-2016"),
		DocumentTitle: "Okoiti v Attorney General",
		DocumentType:  models.DocTypeJudgment,
		Source:        "kenya_law",
		Text:          "The petition raises the question whether the impugned statute violates Article 27 of the Constitution as read with the provisions of the Bill of Rights on equality and freedom from discrimination in all spheres of life.",
		Court:         "High Court",
		Date:          "2016-11-04",
		Citation:      "[2016] eKLR",
	})
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.Equal(t, "High Court", chunk.Court)
		assert.Equal(t, "2016-11-04", chunk.Date)
		assert.Equal(t, "[2016] eKLR", chunk.Citation)
		assert.Equal(t, "Okoiti v Attorney General", chunk.DocumentTitle)
	}
}

func TestChunkIDStableAndShort(t *testing.T) {
	id := ChunkID("abc123", 0)
	assert.Len(t, id, 16)
	assert.Equal(t, id, ChunkID("abc123", 0))
	assert.NotEqual(t, id, ChunkID("abc123", 1))
}

func TestDocumentIDDependsOnSourceAndKey(t *testing.T) {
	assert.NotEqual(t, DocumentID("kenya_law", "x"), DocumentID("judiciary", "x"))
	assert.Equal(t, DocumentID("kenya_law", "x"), DocumentID("kenya_law", "x"))
}
