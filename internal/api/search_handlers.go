package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/classroomhub/hub-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchComments",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments/search",
		Summary:     "Full-text search",
		Description: "Searches template text with fuzzy matching; level and category filter exactly",
		Tags:        []string{"Comments"},
	}, s.handleSearchComments)
}

// SearchCommentsInput contains search parameters.
type SearchCommentsInput struct {
	Query    string `query:"q" doc:"Free-text query over template text"`
	Level    string `query:"level" doc:"Exact level filter"`
	Category string `query:"category" doc:"Exact category slug filter"`
	Limit    int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Page size"`
	Offset   int    `query:"offset" minimum:"0" doc:"Page offset"`
}

// SearchCommentsOutput wraps search results for Huma.
type SearchCommentsOutput struct {
	Body search.Result
}

func (s *Server) handleSearchComments(ctx context.Context, input *SearchCommentsInput) (*SearchCommentsOutput, error) {
	result, err := s.services.Comment.Search(ctx, search.Params{
		Query:    input.Query,
		Level:    input.Level,
		Category: input.Category,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &SearchCommentsOutput{Body: *result}, nil
}
