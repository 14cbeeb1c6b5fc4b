package service

import (
	"context"
	"errors"
	"log"

	"kenyalegal-backend/models"
	"kenyalegal-backend/repository"
	"kenyalegal-backend/retrieval"
	"kenyalegal-backend/tools"

	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Default retrieval widths: cast a wide net in the vector index, then keep
// the best few after re-ranking
const (
	DefaultTopK    = 10
	DefaultRerankK = 5
)

var (
	ErrEmptyQuery       = errors.New("query must not be empty")
	ErrEmbeddingFailed  = errors.New("failed to generate embedding")
	ErrRetrievalFailed  = errors.New("failed to retrieve legal context")
	ErrGenerationFailed = errors.New("failed to generate content")
)

// ResearchService answers legal research queries: it embeds the query,
// retrieves candidate chunks, re-ranks them by court authority, and either
// returns them (search) or grounds a generated answer in them (chat).
type ResearchService struct {
	chunkRepo    *repository.LegalChunkRepository
	db           *pgxpool.Pool
	geminiClient *genai.Client
	ranker       *retrieval.Ranker
	assembler    *retrieval.ContextAssembler
}

// ResearchServiceOption is a functional option for ResearchService
type ResearchServiceOption func(*ResearchService)

// ResearchWithChunkRepository sets the legal chunk repository
func ResearchWithChunkRepository(repo *repository.LegalChunkRepository) ResearchServiceOption {
	return func(s *ResearchService) {
		s.chunkRepo = repo
	}
}

// ResearchWithDatabase sets the database pool
func ResearchWithDatabase(db *pgxpool.Pool) ResearchServiceOption {
	return func(s *ResearchService) {
		s.db = db
	}
}

// ResearchWithGeminiClient sets the Gemini client
func ResearchWithGeminiClient(client *genai.Client) ResearchServiceOption {
	return func(s *ResearchService) {
		s.geminiClient = client
	}
}

// ResearchWithRanker overrides the default Kenyan-hierarchy ranker
func ResearchWithRanker(ranker *retrieval.Ranker) ResearchServiceOption {
	return func(s *ResearchService) {
		s.ranker = ranker
	}
}

// ResearchWithAssembler overrides the default context assembler
func ResearchWithAssembler(assembler *retrieval.ContextAssembler) ResearchServiceOption {
	return func(s *ResearchService) {
		s.assembler = assembler
	}
}

// NewResearchService creates a research service with the Kenyan court
// hierarchy and division routing wired in by default
func NewResearchService(opts ...ResearchServiceOption) *ResearchService {
	s := &ResearchService{
		ranker:    retrieval.NewRanker(retrieval.NewKenyanAuthorityTable(), retrieval.NewKenyanDivisionRouter()),
		assembler: retrieval.NewContextAssembler(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchRequest represents a retrieval-only search
type SearchRequest struct {
	Query        string
	DocumentType string // optional filter: constitution, act, judgment, legal_notice
	Court        string // optional filter
	TopK         int
	RerankK      int
}

// SearchResult carries the re-ranked hits
type SearchResult struct {
	Results []models.RankedResult
}

// Search embeds the query, runs the vector search, and re-ranks the hits by
// court authority. Returns an empty result set when nothing matches.
func (s *ResearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if s.chunkRepo == nil {
		return nil, errors.New("legal chunk repository not set")
	}
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	rerankK := req.RerankK
	if rerankK <= 0 {
		rerankK = DefaultRerankK
	}

	embedding, err := embedQuery(ctx, req.Query)
	if err != nil {
		log.Printf("Query embedding failed: %v", err)
		return nil, ErrEmbeddingFailed
	}

	hits, err := s.chunkRepo.Search(ctx, embedding, topK, req.DocumentType, req.Court)
	if err != nil {
		log.Printf("Vector search failed: %v", err)
		return nil, ErrRetrievalFailed
	}

	ranked := s.ranker.Rank(req.Query, hits, rerankK, req.Court)
	return &SearchResult{Results: ranked}, nil
}

// AnswerRequest represents a chat query
type AnswerRequest struct {
	Query        string
	Mode         string // research | case_analysis | drafting | plain_language
	DocumentType string // optional filter
	Court        string // optional filter
}

// SourceRef is the per-source metadata returned alongside an answer
type SourceRef struct {
	Title          string  `json:"title"`
	Section        string  `json:"section"`
	Citation       string  `json:"citation"`
	Court          string  `json:"court"`
	Date           string  `json:"date"`
	RelevanceScore float64 `json:"relevance_score"`
}

// AnswerResult is a generated answer with its grounding sources and the
// disclaimer assessment for the query
type AnswerResult struct {
	Response        string      `json:"response"`
	Sources         []SourceRef `json:"sources"`
	Mode            string      `json:"mode"`
	RAGUsed         bool        `json:"rag_used"`
	DisclaimerLevel string      `json:"disclaimer_level"`
	Disclaimer      string      `json:"disclaimer"`
}

// Answer generates a legal research answer. Retrieval context is used when
// available; when the index returns nothing the answer falls back to the
// model's own knowledge, flagged by RAGUsed=false.
func (s *ResearchService) Answer(ctx context.Context, req AnswerRequest) (*AnswerResult, error) {
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}
	if s.geminiClient == nil {
		return nil, errors.New("gemini client not set")
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeResearch
	}

	level, disclaimer := tools.AssessDisclaimer(req.Query)

	var ranked []models.RankedResult
	if s.chunkRepo != nil {
		searchResult, err := s.Search(ctx, SearchRequest{
			Query:        req.Query,
			DocumentType: req.DocumentType,
			Court:        req.Court,
		})
		if err != nil {
			// Retrieval degradation falls back to direct mode
			log.Printf("Warning: retrieval unavailable, answering from model knowledge: %v", err)
		} else {
			ranked = searchResult.Results
		}
	}

	var prompt string
	ragUsed := false
	if len(ranked) > 0 {
		contextBlock := s.assembler.Assemble(ranked)
		if contextBlock != "" {
			prompt = buildRAGPrompt(mode, contextBlock, req.Query)
			ragUsed = true
		}
	}
	if !ragUsed {
		prompt = buildDirectPrompt(mode, req.Query)
	}

	response, err := callGenerationAPI(ctx, prompt, temperatureForMode(mode))
	if err != nil {
		log.Printf("Generation failed: %v", err)
		return nil, ErrGenerationFailed
	}

	sources := make([]SourceRef, 0, len(ranked))
	if ragUsed {
		for _, r := range ranked {
			sources = append(sources, SourceRef{
				Title:          r.DocumentTitle,
				Section:        r.Section,
				Citation:       r.Citation,
				Court:          r.Court,
				Date:           r.Date,
				RelevanceScore: r.AdjustedScore,
			})
		}
	}

	return &AnswerResult{
		Response:        response,
		Sources:         sources,
		Mode:            mode,
		RAGUsed:         ragUsed,
		DisclaimerLevel: string(level),
		Disclaimer:      disclaimer,
	}, nil
}

// StatusResult summarizes the state of the chunk index
type StatusResult struct {
	TotalChunks  int            `json:"total_chunks"`
	ChunksByType map[string]int `json:"chunks_by_type"`
}

// Status reports how many chunks are indexed per document type
func (s *ResearchService) Status(ctx context.Context) (*StatusResult, error) {
	if s.chunkRepo == nil {
		return nil, errors.New("legal chunk repository not set")
	}

	counts, err := s.chunkRepo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	return &StatusResult{
		TotalChunks:  total,
		ChunksByType: counts,
	}, nil
}
