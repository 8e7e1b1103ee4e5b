package google

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Searcher implements imagesearch.Searcher with Google Programmable Search.
type Searcher struct {
	service  *customsearch.Service
	engineID string
}

func NewSearcher(ctx context.Context, apiKey, engineID string, opts ...option.ClientOption) (*Searcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}
	return &Searcher{service: service, engineID: engineID}, nil
}

// FirstImageURL asks for exactly one image result with strict safe-search
// and returns its link, or "" when the query matched nothing.
func (s *Searcher) FirstImageURL(ctx context.Context, query string) (string, error) {
	resp, err := s.service.Cse.List().
		Context(ctx).
		Cx(s.engineID).
		Q(query).
		SearchType("image").
		Safe("active").
		Num(1).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search images: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Link, nil
}
