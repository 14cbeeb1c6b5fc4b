package models

// DocumentType identifies the kind of legal document a chunk came from
type DocumentType string

const (
	DocTypeConstitution DocumentType = "constitution"
	DocTypeAct          DocumentType = "act"
	DocTypeJudgment     DocumentType = "judgment"
	DocTypeLegalNotice  DocumentType = "legal_notice"
)

// Chunk represents a retrievable segment of a legal document
type Chunk struct {
	ChunkID       string                 `json:"chunk_id"`
	DocumentID    string                 `json:"document_id"`
	DocumentTitle string                 `json:"document_title"`
	DocumentType  DocumentType           `json:"document_type"`
	Source        string                 `json:"source"` // "kenya_law", "laws_africa", "judiciary"
	Text          string                 `json:"text"`
	Section       string                 `json:"section"` // e.g., "Article 27", "Part II"
	Court         string                 `json:"court"`
	Date          string                 `json:"date"`
	Citation      string                 `json:"citation"`
	ChunkIndex    int                    `json:"chunk_index"`
	TotalChunks   int                    `json:"total_chunks"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}
