package search

import (
	"context"
	"log"
)

type SearchService struct {
	Cache    *Cache
	Provider Provider
}

func NewSearchService(cache *Cache, provider Provider) *SearchService {
	return &SearchService{Cache: cache, Provider: provider}
}

// Search serves the streaming endpoint: cached results are reused and kept.
func (s *SearchService) Search(ctx context.Context, key Key) (*Result, error) {
	key = key.normalized()
	return s.Cache.GetOrFetch(ctx, key, func(ctx context.Context) (*Result, error) {
		log.Printf("search: cache miss query=%q model=%s", key.Query, key.Model)
		return s.Provider.Search(ctx, key.Query, key.Model)
	})
}

// Consume serves terminal actions. A cached result is evicted as it is
// handed out; on a miss the provider is called and nothing is stored.
func (s *SearchService) Consume(ctx context.Context, key Key) (*Result, error) {
	key = key.normalized()
	if res, ok := s.Cache.Take(key); ok {
		log.Printf("search: reusing cached result query=%q model=%s", key.Query, key.Model)
		return res, nil
	}
	return s.Provider.Search(ctx, key.Query, key.Model)
}
