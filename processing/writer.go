package processing

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"kenyalegal-backend/models"
)

// WriteChunksJSONL serializes chunks one record per line. This is the file
// format the indexing step consumes, one file per ingestion batch.
func WriteChunksJSONL(w io.Writer, chunks []models.Chunk) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for _, chunk := range chunks {
		// Encode appends the newline itself
		if err := enc.Encode(chunk); err != nil {
			return fmt.Errorf("failed to encode chunk %s: %w", chunk.ChunkID, err)
		}
	}

	return bw.Flush()
}

// SaveChunks writes a chunk batch to <dir>/<name>.jsonl
func SaveChunks(chunks []models.Chunk, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, name+".jsonl")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteChunksJSONL(f, chunks); err != nil {
		return "", err
	}

	log.Printf("Saved %d chunks to %s", len(chunks), path)
	return path, nil
}

// EncodeChunksJSONL returns the JSONL serialization as a byte slice, for
// callers that archive batches to object storage rather than local disk
func EncodeChunksJSONL(chunks []models.Chunk) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteChunksJSONL(&buf, chunks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadChunksJSONL reads a one-record-per-line chunk file back into memory
func ReadChunksJSONL(r io.Reader) ([]models.Chunk, error) {
	var chunks []models.Chunk

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var chunk models.Chunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return nil, fmt.Errorf("failed to parse chunk line: %w", err)
		}
		chunks = append(chunks, chunk)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunk file: %w", err)
	}

	return chunks, nil
}
