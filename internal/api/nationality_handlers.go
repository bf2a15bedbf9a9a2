package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/georeads/georeads/internal/service"
)

func (s *Server) registerNationalityRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "authorBatch",
		Method:      http.MethodGet,
		Path:        "/api/author_batch",
		Summary:     "Resolve author nationalities",
		Description: "Resolves the country of citizenship of each author, cache first, then Wikidata",
		Tags:        []string{"Nationalities"},
		Middlewares: huma.Middlewares{s.rateLimitBatch},
	}, s.handleAuthorBatch)

	huma.Register(s.api, huma.Operation{
		OperationID: "nationalityCounts",
		Method:      http.MethodGet,
		Path:        "/api/nationality_counts",
		Summary:     "Nationality counts",
		Description: "Returns the number of cached authors per country, keyed by ISO 3166-1 alpha-3 code",
		Tags:        []string{"Nationalities"},
	}, s.handleNationalityCounts)
}

// === DTOs ===

// AuthorBatchInput contains parameters for a batch lookup.
type AuthorBatchInput struct {
	Names string `query:"names" doc:"Comma-separated author names" example:"George Orwell,Toni Morrison"`
}

// AuthorResult is one resolved author.
type AuthorResult struct {
	Name        string `json:"name" doc:"Author name as requested"`
	Nationality string `json:"nationality" doc:"Country of citizenship label, or Unknown"`
	Cached      bool   `json:"cached" doc:"Whether the answer came from the cache"`
}

// AuthorBatchResponse contains batch lookup results.
type AuthorBatchResponse struct {
	Results []AuthorResult `json:"results" doc:"One entry per distinct requested name, in request order"`
}

// AuthorBatchOutput wraps the batch response for Huma.
type AuthorBatchOutput struct {
	Body AuthorBatchResponse
}

// NationalityCountsResponse contains per-country author counts.
type NationalityCountsResponse struct {
	Results map[string]int `json:"results" doc:"Author counts keyed by ISO 3166-1 alpha-3 code"`
}

// NationalityCountsOutput wraps the counts response for Huma.
type NationalityCountsOutput struct {
	Body NationalityCountsResponse
}

// === Handlers ===

func (s *Server) handleAuthorBatch(ctx context.Context, input *AuthorBatchInput) (*AuthorBatchOutput, error) {
	names := service.ParseNames(input.Names)

	records, err := s.services.Nationality.ResolveBatch(ctx, names)
	if err != nil {
		return nil, s.mapError(err, "author batch failed")
	}

	results := make([]AuthorResult, len(records))
	for i, r := range records {
		results[i] = AuthorResult{Name: r.Name, Nationality: r.Nationality, Cached: r.Cached}
	}
	return &AuthorBatchOutput{Body: AuthorBatchResponse{Results: results}}, nil
}

func (s *Server) handleNationalityCounts(ctx context.Context, _ *struct{}) (*NationalityCountsOutput, error) {
	counts, err := s.services.Counts.NationalityCounts(ctx)
	if err != nil {
		s.logger.Error("Failed to load nationality counts", "error", err)
		return nil, huma.Error500InternalServerError("failed to load nationality counts")
	}
	return &NationalityCountsOutput{Body: NationalityCountsResponse{Results: counts}}, nil
}
