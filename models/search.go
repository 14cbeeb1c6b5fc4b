package models

// SearchHit is a raw similarity result returned by the vector index,
// before any re-ranking is applied
type SearchHit struct {
	ChunkID       string  `json:"chunk_id"`
	DocumentID    string  `json:"document_id"`
	DocumentTitle string  `json:"document_title"`
	DocumentType  string  `json:"document_type"`
	Source        string  `json:"source"`
	Text          string  `json:"text"`
	Section       string  `json:"section"`
	Court         string  `json:"court"`
	Date          string  `json:"date"`
	Citation      string  `json:"citation"`
	Score         float64 `json:"score"` // vector similarity, higher is better
}

// RankedResult is a search hit annotated with the scoring state accumulated
// by the ranking pipeline. Each ranking call owns its own slice; results are
// never shared across queries.
type RankedResult struct {
	SearchHit
	AdjustedScore   float64 `json:"adjusted_score"`
	HierarchyWeight float64 `json:"hierarchy_weight"`
	KeywordBoost    float64 `json:"keyword_boost"`
	DivisionBoost   float64 `json:"division_boost"`
}
