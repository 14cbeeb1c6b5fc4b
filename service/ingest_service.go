package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"kenyalegal-backend/models"
	"kenyalegal-backend/processing"
	"kenyalegal-backend/repository"
	"kenyalegal-backend/storage"

	"github.com/google/uuid"
)

// IngestService turns already-fetched raw documents into indexed chunks:
// process and chunk, archive the JSONL batch for the run, embed, insert.
type IngestService struct {
	chunkRepo    *repository.LegalChunkRepository
	archive      storage.ArchiveStore
	processor    *processing.Processor
	processedDir string
}

// IngestServiceOption is a functional option for IngestService
type IngestServiceOption func(*IngestService)

// IngestWithChunkRepository sets the legal chunk repository
func IngestWithChunkRepository(repo *repository.LegalChunkRepository) IngestServiceOption {
	return func(s *IngestService) {
		s.chunkRepo = repo
	}
}

// IngestWithArchiveStore sets the archive store for run artifacts
func IngestWithArchiveStore(archive storage.ArchiveStore) IngestServiceOption {
	return func(s *IngestService) {
		s.archive = archive
	}
}

// IngestWithProcessor overrides the default document processor
func IngestWithProcessor(processor *processing.Processor) IngestServiceOption {
	return func(s *IngestService) {
		s.processor = processor
	}
}

// IngestWithProcessedDir keeps a local JSONL copy of each run's chunk batch
// under the given directory
func IngestWithProcessedDir(dir string) IngestServiceOption {
	return func(s *IngestService) {
		s.processedDir = dir
	}
}

// NewIngestService creates an ingest service with a default chunker
func NewIngestService(opts ...IngestServiceOption) *IngestService {
	s := &IngestService{
		processor: processing.NewProcessor(processing.NewChunker()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IngestStats summarizes one ingestion run
type IngestStats struct {
	RunID       uuid.UUID
	Documents   int
	Chunks      int
	ArchivePath string
}

// IngestDirectory processes every document under rawDir. Expected layout,
// matching what the scrapers write:
//
//	rawDir/kenya_law/<case>/judgment.txt + metadata.json
//	rawDir/laws_africa/<act>/content.html + metadata.json
//	rawDir/judiciary/<doc>/document.pdf + metadata.json
//
// Per-document failures are logged and skipped; the run continues.
func (s *IngestService) IngestDirectory(ctx context.Context, rawDir string) (*IngestStats, error) {
	if s.chunkRepo == nil {
		return nil, errors.New("legal chunk repository not set")
	}

	stats := &IngestStats{RunID: uuid.New()}
	var chunks []models.Chunk

	collect := func(docChunks []models.Chunk, err error, path string) {
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			return
		}
		if len(docChunks) == 0 {
			return
		}
		stats.Documents++
		chunks = append(chunks, docChunks...)
	}

	for _, dir := range subdirectories(filepath.Join(rawDir, "kenya_law")) {
		docChunks, err := s.processor.ProcessJudgmentFile(
			filepath.Join(dir, "judgment.txt"),
			filepath.Join(dir, "metadata.json"),
		)
		collect(docChunks, err, dir)
	}

	for _, dir := range subdirectories(filepath.Join(rawDir, "laws_africa")) {
		docChunks, err := s.processor.ProcessLegislationFile(
			filepath.Join(dir, "content.html"),
			filepath.Join(dir, "metadata.json"),
		)
		collect(docChunks, err, dir)
	}

	for _, dir := range subdirectories(filepath.Join(rawDir, "judiciary")) {
		docChunks, err := s.processor.ProcessJudiciaryDir(dir)
		collect(docChunks, err, dir)
	}

	stats.Chunks = len(chunks)
	if len(chunks) == 0 {
		log.Println("Warning: no chunks produced, nothing to index")
		return stats, nil
	}

	if s.processedDir != "" {
		if _, err := processing.SaveChunks(chunks, s.processedDir, stats.RunID.String()); err != nil {
			log.Printf("Warning: failed to save processed chunk batch: %v", err)
		}
	}

	// Archive the chunk batch before any network work, so a failed embed run
	// can be replayed from the archive
	if s.archive != nil {
		data, err := processing.EncodeChunksJSONL(chunks)
		if err != nil {
			return nil, fmt.Errorf("failed to encode chunk batch: %w", err)
		}
		path, err := s.archive.Put(ctx, stats.RunID, "chunks.jsonl", bytes.NewReader(data))
		if err != nil {
			log.Printf("Warning: failed to archive chunk batch: %v", err)
		} else {
			stats.ArchivePath = path
		}
	}

	if err := s.index(ctx, chunks); err != nil {
		return nil, err
	}

	return stats, nil
}

// ReplayArchive re-indexes a previously archived chunk batch, identified by
// the archive path a prior run reported. Embedding and insertion run as in a
// fresh ingestion; the upsert makes the replay idempotent.
func (s *IngestService) ReplayArchive(ctx context.Context, archivePath string) (*IngestStats, error) {
	if s.chunkRepo == nil {
		return nil, errors.New("legal chunk repository not set")
	}
	if s.archive == nil {
		return nil, errors.New("archive store not set")
	}

	reader, err := s.archive.Get(ctx, archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archived batch: %w", err)
	}
	defer reader.Close()

	chunks, err := processing.ReadChunksJSONL(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse archived batch: %w", err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("archived batch %s holds no chunks", archivePath)
	}

	stats := &IngestStats{
		RunID:       uuid.New(),
		Chunks:      len(chunks),
		ArchivePath: archivePath,
	}
	docs := make(map[string]bool)
	for _, chunk := range chunks {
		docs[chunk.DocumentID] = true
	}
	stats.Documents = len(docs)

	if err := s.index(ctx, chunks); err != nil {
		return nil, err
	}

	return stats, nil
}

// index embeds a chunk batch and stores it, then reports any rows the
// database still holds without an embedding
func (s *IngestService) index(ctx context.Context, chunks []models.Chunk) error {
	embeddings, err := s.embedChunks(ctx, chunks)
	if err != nil {
		return err
	}

	if err := s.chunkRepo.InsertChunks(ctx, chunks, embeddings); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}

	missing, err := s.chunkRepo.MissingEmbeddingIDs(ctx, len(chunks))
	if err != nil {
		log.Printf("Warning: failed to check for missing embeddings: %v", err)
	} else if len(missing) > 0 {
		log.Printf("Warning: %d chunks still lack embeddings, replay the archived batch to backfill", len(missing))
	}

	return nil
}

// embedChunks generates document embeddings for a chunk batch
func (s *IngestService) embedChunks(ctx context.Context, chunks []models.Chunk) ([][]float64, error) {
	inputs := make([]string, len(chunks))
	for i, chunk := range chunks {
		inputs[i] = buildEmbeddingInput(chunk)
	}

	embeddings, err := embedDocuments(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("mismatch: got %d embeddings for %d chunks", len(embeddings), len(chunks))
	}
	return embeddings, nil
}

// buildEmbeddingInput prefixes the chunk text with its identifying metadata
// so the embedding carries document context, not just the raw passage
func buildEmbeddingInput(chunk models.Chunk) string {
	var builder strings.Builder

	if chunk.DocumentTitle != "" {
		builder.WriteString(fmt.Sprintf("[DOCUMENT: %s]\n", chunk.DocumentTitle))
	}
	if chunk.Section != "" {
		builder.WriteString(fmt.Sprintf("[SECTION: %s]\n", chunk.Section))
	}
	if chunk.Court != "" {
		builder.WriteString(fmt.Sprintf("[COURT: %s]\n", chunk.Court))
	}
	if chunk.Citation != "" {
		builder.WriteString(fmt.Sprintf("[CITATION: %s]\n", chunk.Citation))
	}
	if builder.Len() > 0 {
		builder.WriteString("\n")
	}
	builder.WriteString(chunk.Text)

	return builder.String()
}

// subdirectories lists immediate subdirectories of dir; a missing dir is not
// an error, ingestion sources are optional
func subdirectories(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read %s: %v", dir, err)
		}
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	return dirs
}
