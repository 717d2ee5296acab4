package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Index wraps a memory-only Bleve index over comment templates.
//
// Thread safety: all public methods are safe for concurrent use. The mutex
// protects against concurrent mutation during Rebuild.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewIndex creates an empty in-memory index.
func NewIndex(logger *slog.Logger) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}
	return &Index{index: idx, logger: logger}, nil
}

// buildIndexMapping maps template text for full-text search with English
// stemming, and tags/level/categories as exact keywords for filtering.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName
	textFieldMapping.Store = true
	textFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("text", textFieldMapping)

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name
	keywordFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("tags", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("level", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("categories", keywordFieldMapping)

	numericFieldMapping := bleve.NewNumericFieldMapping()
	docMapping.AddFieldMappingsAt("updated_at", numericFieldMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Close releases index resources.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// Upsert indexes one document, replacing any previous version.
func (s *Index) Upsert(doc *TemplateDocument) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Index(doc.ID, doc.ToMap())
}

// Delete removes one document. Unknown ids are a no-op.
func (s *Index) Delete(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Delete(id)
}

// Rebuild replaces the entire index content with the given documents.
func (s *Index) Rebuild(docs []*TemplateDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create search index: %w", err)
	}

	batch := fresh.NewBatch()
	for _, doc := range docs {
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			fresh.Close()
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	if err := fresh.Batch(batch); err != nil {
		fresh.Close()
		return fmt.Errorf("commit batch: %w", err)
	}

	old := s.index
	s.index = fresh
	if old != nil {
		old.Close()
	}

	if s.logger != nil {
		s.logger.Info("search index rebuilt", "documents", len(docs))
	}
	return nil
}

// Count returns the number of indexed documents.
func (s *Index) Count() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
