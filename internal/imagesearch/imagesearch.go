package imagesearch

import "context"

// Searcher looks up a representative product image for a device name.
// Implementations return an empty URL (no error) when nothing is found.
type Searcher interface {
	FirstImageURL(ctx context.Context, query string) (string, error)
}
