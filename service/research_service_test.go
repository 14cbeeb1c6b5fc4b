package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenyalegal-backend/repository"
)

func TestAnswerRejectsEmptyQuery(t *testing.T) {
	svc := NewResearchService()
	_, err := svc.Answer(context.Background(), AnswerRequest{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestAnswerRequiresGeminiClient(t *testing.T) {
	// No client wired; the guard must trip before any retrieval or
	// generation work
	svc := NewResearchService()
	_, err := svc.Answer(context.Background(), AnswerRequest{
		Query: "limitation period for breach of contract",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "gemini client not set")
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewResearchService(
		ResearchWithChunkRepository(repository.NewLegalChunkRepository(nil)),
	)
	_, err := svc.Search(context.Background(), SearchRequest{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchRequiresChunkRepository(t *testing.T) {
	svc := NewResearchService()
	_, err := svc.Search(context.Background(), SearchRequest{Query: "land dispute"})
	require.Error(t, err)
	assert.EqualError(t, err, "legal chunk repository not set")
}
