package repository

import (
	"context"
	"fmt"
	"strings"

	"kenyalegal-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmbeddingDimensions is the width of the embedding vectors stored in the
// legal_chunks table. All embeddings written and queried must match it.
const EmbeddingDimensions = 768

// LegalChunkRepository handles database operations for legal chunks
type LegalChunkRepository struct {
	db *pgxpool.Pool
}

// NewLegalChunkRepository creates a new legal chunk repository
func NewLegalChunkRepository(db *pgxpool.Pool) *LegalChunkRepository {
	return &LegalChunkRepository{db: db}
}

// formatVector formats an embedding vector as a string for pgx
func formatVector(embedding []float64) string {
	if len(embedding) == 0 {
		return "[]"
	}
	var parts []string
	for _, v := range embedding {
		parts = append(parts, fmt.Sprintf("%.6f", v))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Search performs a cosine-similarity search over the chunk embeddings.
// embedding: query embedding vector (768 dimensions)
// topK: maximum number of hits to return
// docType: optional document_type filter ("" means all types)
// court: optional court filter, matched as a case-insensitive substring
// Hits come back ordered by similarity, Score = 1 - cosine distance.
func (r *LegalChunkRepository) Search(
	ctx context.Context,
	embedding []float64,
	topK int,
	docType string,
	court string,
) ([]models.SearchHit, error) {
	if len(embedding) != EmbeddingDimensions {
		return nil, fmt.Errorf("embedding must be %d dimensions, got %d", EmbeddingDimensions, len(embedding))
	}

	vectorStr := formatVector(embedding)

	conditions := []string{"embedding IS NOT NULL"}
	args := []interface{}{vectorStr}

	if docType != "" {
		args = append(args, docType)
		conditions = append(conditions, fmt.Sprintf("document_type = $%d", len(args)))
	}
	if court != "" {
		args = append(args, "%"+court+"%")
		conditions = append(conditions, fmt.Sprintf("court ILIKE $%d", len(args)))
	}

	args = append(args, topK)

	query := fmt.Sprintf(`
		SELECT
			chunk_id,
			document_id,
			document_title,
			document_type,
			source,
			chunk_text,
			section,
			court,
			decision_date,
			citation,
			embedding <=> $1::vector AS distance
		FROM legal_chunks
		WHERE %s
		ORDER BY
			embedding <=> $1::vector
		LIMIT $%d`, strings.Join(conditions, " AND "), len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query legal chunks: %w", err)
	}
	defer rows.Close()

	var hits []models.SearchHit
	for rows.Next() {
		var hit models.SearchHit
		var distance float64
		err := rows.Scan(
			&hit.ChunkID,
			&hit.DocumentID,
			&hit.DocumentTitle,
			&hit.DocumentType,
			&hit.Source,
			&hit.Text,
			&hit.Section,
			&hit.Court,
			&hit.Date,
			&hit.Citation,
			&distance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legal chunk: %w", err)
		}
		hit.Score = 1 - distance
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legal chunks: %w", err)
	}

	return hits, nil
}

// InsertChunks stores chunks with their embeddings in a single transaction.
// chunks and embeddings are parallel slices; a chunk whose embedding slot is
// empty is stored with a NULL embedding and excluded from search until
// re-embedded. Re-inserting an existing chunk_id overwrites the stored row,
// so ingestion runs are idempotent.
func (r *LegalChunkRepository) InsertChunks(
	ctx context.Context,
	chunks []models.Chunk,
	embeddings [][]float64,
) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunk count %d does not match embedding count %d", len(chunks), len(embeddings))
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO legal_chunks (
			chunk_id, document_id, document_title, document_type, source,
			chunk_text, section, court, decision_date, citation,
			chunk_index, total_chunks, metadata, embedding
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::vector)
		ON CONFLICT (chunk_id) DO UPDATE SET
			document_title = EXCLUDED.document_title,
			chunk_text = EXCLUDED.chunk_text,
			section = EXCLUDED.section,
			court = EXCLUDED.court,
			decision_date = EXCLUDED.decision_date,
			citation = EXCLUDED.citation,
			chunk_index = EXCLUDED.chunk_index,
			total_chunks = EXCLUDED.total_chunks,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding,
			updated_at = NOW()`

	for i, chunk := range chunks {
		var vector interface{}
		if len(embeddings[i]) > 0 {
			if len(embeddings[i]) != EmbeddingDimensions {
				return fmt.Errorf("chunk %s: embedding must be %d dimensions, got %d",
					chunk.ChunkID, EmbeddingDimensions, len(embeddings[i]))
			}
			vector = formatVector(embeddings[i])
		}

		_, err := tx.Exec(ctx, query,
			chunk.ChunkID,
			chunk.DocumentID,
			chunk.DocumentTitle,
			string(chunk.DocumentType),
			chunk.Source,
			chunk.Text,
			chunk.Section,
			chunk.Court,
			chunk.Date,
			chunk.Citation,
			chunk.ChunkIndex,
			chunk.TotalChunks,
			chunk.Metadata,
			vector,
		)
		if err != nil {
			return fmt.Errorf("failed to insert chunk %s: %w", chunk.ChunkID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit chunk insert: %w", err)
	}

	return nil
}

// CountByType returns the number of stored chunks per document type
func (r *LegalChunkRepository) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT document_type, COUNT(*)
		FROM legal_chunks
		GROUP BY document_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count legal chunks: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var docType string
		var count int
		if err := rows.Scan(&docType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan chunk count: %w", err)
		}
		counts[docType] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chunk counts: %w", err)
	}

	return counts, nil
}

// MissingEmbeddingIDs lists chunk IDs stored without an embedding, in
// insertion order, so an embedding backfill can pick them up
func (r *LegalChunkRepository) MissingEmbeddingIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT chunk_id
		FROM legal_chunks
		WHERE embedding IS NULL
		ORDER BY created_at
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unembedded chunks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan chunk id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chunk ids: %w", err)
	}

	return ids, nil
}
