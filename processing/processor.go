package processing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"kenyalegal-backend/models"
)

// Processor turns already-fetched raw documents (scraped judgments,
// downloaded legislation, judiciary PDFs) into chunks. Fetching itself is
// owned by the scrapers; the processor only reads files on disk.
type Processor struct {
	chunker *Chunker
}

// NewProcessor creates a processor around the given chunker
func NewProcessor(chunker *Chunker) *Processor {
	return &Processor{chunker: chunker}
}

// documentMetadata is the sidecar metadata.json written by the scrapers
type documentMetadata struct {
	Title      string `json:"title"`
	CaseNumber string `json:"case_number"`
	FrbrURI    string `json:"frbr_uri"`
	Court      string `json:"court"`
	Date       string `json:"date"`
	Citation   string `json:"citation"`
}

func readMetadata(path string) (documentMetadata, map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return documentMetadata{}, nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta documentMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return documentMetadata{}, nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = map[string]interface{}{}
	}

	return meta, raw, nil
}

// ProcessJudgmentFile chunks a scraped judgment (judgment.txt + metadata.json)
func (p *Processor) ProcessJudgmentFile(textPath, metadataPath string) ([]models.Chunk, error) {
	text, err := os.ReadFile(textPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read judgment text: %w", err)
	}

	meta, raw, err := readMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	naturalKey := meta.CaseNumber
	if naturalKey == "" {
		naturalKey = strings.TrimSuffix(filepath.Base(textPath), filepath.Ext(textPath))
	}

	return p.chunker.ChunkDocument(DocumentInput{
		DocumentID:    DocumentID("kenya_law", naturalKey),
		DocumentTitle: meta.Title,
		DocumentType:  models.DocTypeJudgment,
		Source:        "kenya_law",
		Text:          string(text),
		Court:         meta.Court,
		Date:          meta.Date,
		Citation:      meta.Citation,
		Metadata:      raw,
	}), nil
}

// ProcessLegislationFile chunks downloaded legislation (content.html +
// metadata.json). Text is extracted from the HTML before chunking.
func (p *Processor) ProcessLegislationFile(htmlPath, metadataPath string) ([]models.Chunk, error) {
	html, err := os.ReadFile(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read legislation html: %w", err)
	}

	meta, raw, err := readMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	text, err := ExtractTextFromHTML(string(html))
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from html: %w", err)
	}

	naturalKey := meta.FrbrURI
	if naturalKey == "" {
		naturalKey = strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath))
	}

	return p.chunker.ChunkDocument(DocumentInput{
		DocumentID:    DocumentID("laws_africa", naturalKey),
		DocumentTitle: meta.Title,
		DocumentType:  models.DocTypeAct,
		Source:        "laws_africa",
		Text:          text,
		Date:          meta.Date,
		Citation:      meta.Citation,
		Metadata:      raw,
	}), nil
}

// ProcessJudiciaryDir chunks a judiciary document directory
// (document.pdf + metadata.json). Practice directions, orders and gazette
// notices all arrive this way.
func (p *Processor) ProcessJudiciaryDir(docDir string) ([]models.Chunk, error) {
	pdfPath := filepath.Join(docDir, "document.pdf")
	metaPath := filepath.Join(docDir, "metadata.json")

	if _, err := os.Stat(pdfPath); err != nil {
		return nil, nil
	}
	if _, err := os.Stat(metaPath); err != nil {
		return nil, nil
	}

	meta, raw, err := readMetadata(metaPath)
	if err != nil {
		return nil, err
	}

	text, err := ExtractTextFromPDF(pdfPath)
	if err != nil {
		log.Printf("Warning: Failed to extract text from %s: %v", pdfPath, err)
		return nil, nil
	}

	return p.chunker.ChunkDocument(DocumentInput{
		DocumentID:    DocumentID("judiciary", filepath.Base(docDir)),
		DocumentTitle: meta.Title,
		DocumentType:  models.DocTypeLegalNotice,
		Source:        "judiciary",
		Text:          text,
		Court:         meta.Court,
		Date:          meta.Date,
		Citation:      meta.Citation,
		Metadata:      raw,
	}), nil
}

// ExtractTextFromHTML extracts readable text from legislation HTML,
// preserving block boundaries as newlines
func ExtractTextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()

	var blocks []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, section, article").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text
		if s.Children().Filter("p, div, section, article, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}

	return strings.Join(blocks, "\n"), nil
}

// ExtractTextFromPDF extracts plain text from a PDF file
func ExtractTextFromPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	body, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	if _, err := io.Copy(&buf, body); err != nil {
		return "", fmt.Errorf("failed to read pdf buffer: %w", err)
	}

	return buf.String(), nil
}
