package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a template search.
type Params struct {
	Query    string // free-text query over template text
	Level    string // exact level filter, empty = all
	Category string // exact category slug filter, empty = all
	Limit    int
	Offset   int
}

// DefaultParams returns sensible pagination defaults.
func DefaultParams() Params {
	return Params{Limit: 20}
}

// Result holds one page of search hits.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit is a single matched template.
type Hit struct {
	ID         string            `json:"id"`
	Score      float64           `json:"score"`
	Text       string            `json:"text"`
	Level      string            `json:"level,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Search executes a query against the index.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		params.Limit = 20
	}

	searchRequest := bleve.NewSearchRequestOptions(buildQuery(params), params.Limit, params.Offset, false)
	searchRequest.Fields = []string{"text", "level"}
	searchRequest.Highlight = bleve.NewHighlight()
	searchRequest.Highlight.AddField("text")

	res, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	out := &Result{
		Query:  params.Query,
		Total:  res.Total,
		TookMs: res.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(res.Hits)),
	}
	for _, hit := range res.Hits {
		h := Hit{ID: hit.ID, Score: hit.Score}
		if text, ok := hit.Fields["text"].(string); ok {
			h.Text = text
		}
		if level, ok := hit.Fields["level"].(string); ok {
			h.Level = level
		}
		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string, len(hit.Fragments))
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}
		out.Hits = append(out.Hits, h)
	}
	return out, nil
}

func buildQuery(params Params) query.Query {
	var clauses []query.Query

	if params.Query != "" {
		match := bleve.NewMatchQuery(params.Query)
		match.SetField("text")
		match.SetFuzziness(1)
		clauses = append(clauses, match)
	}
	if params.Level != "" {
		term := bleve.NewTermQuery(params.Level)
		term.SetField("level")
		clauses = append(clauses, term)
	}
	if params.Category != "" {
		term := bleve.NewTermQuery(params.Category)
		term.SetField("categories")
		clauses = append(clauses, term)
	}

	switch len(clauses) {
	case 0:
		return bleve.NewMatchAllQuery()
	case 1:
		return clauses[0]
	default:
		return bleve.NewConjunctionQuery(clauses...)
	}
}
