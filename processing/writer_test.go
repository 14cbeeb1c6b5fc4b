package processing

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenyalegal-backend/models"
)

func sampleChunks() []models.Chunk {
	return []models.Chunk{
		{
			ChunkID:       "abc123def4567890",
			DocumentID:    "kenya_law_petition-12-2016",
			DocumentTitle: "Okiya Omtatah v Attorney General",
			DocumentType:  models.DocTypeJudgment,
			Source:        "kenya_law",
			Text:          "The court held that the impugned provisions were unconstitutional.",
			Section:       "Paragraph 45",
			Court:         "High Court",
			Date:          "2016-11-04",
			Citation:      "[2016] eKLR",
			ChunkIndex:    0,
			TotalChunks:   2,
			Metadata:      map[string]interface{}{"judge": "Mwita J"},
		},
		{
			ChunkID:      "fedcba0987654321",
			DocumentID:   "laws_africa_land-act-2012",
			DocumentType: models.DocTypeAct,
			Source:       "laws_africa",
			Text:         "Section 152B provides for eviction notices.",
			Section:      "Section 152B",
			ChunkIndex:   1,
			TotalChunks:  2,
		},
	}
}

func TestChunksJSONLRoundTrip(t *testing.T) {
	chunks := sampleChunks()

	var buf bytes.Buffer
	require.NoError(t, WriteChunksJSONL(&buf, chunks))

	// One record per line, no trailing blank record
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(chunks))

	decoded, err := ReadChunksJSONL(&buf)
	require.NoError(t, err)
	assert.Equal(t, chunks, decoded)
}

func TestEncodeChunksJSONLMatchesWriter(t *testing.T) {
	chunks := sampleChunks()

	var buf bytes.Buffer
	require.NoError(t, WriteChunksJSONL(&buf, chunks))

	encoded, err := EncodeChunksJSONL(chunks)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), encoded)
}

func TestSaveChunksWritesReadableFile(t *testing.T) {
	chunks := sampleChunks()
	dir := t.TempDir()

	path, err := SaveChunks(chunks, dir, "batch")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "batch.jsonl"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := ReadChunksJSONL(f)
	require.NoError(t, err)
	assert.Equal(t, chunks, decoded)
}

func TestReadChunksJSONLSkipsBlankLines(t *testing.T) {
	input := "\n{\"chunk_id\":\"aa\",\"text\":\"first\"}\n\n{\"chunk_id\":\"bb\",\"text\":\"second\"}\n"

	chunks, err := ReadChunksJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "aa", chunks[0].ChunkID)
	assert.Equal(t, "second", chunks[1].Text)
}

func TestReadChunksJSONLRejectsMalformedLine(t *testing.T) {
	input := "{\"chunk_id\":\"aa\"}\nnot json\n"

	_, err := ReadChunksJSONL(strings.NewReader(input))
	assert.Error(t, err)
}
