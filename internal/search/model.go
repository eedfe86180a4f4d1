package search

import "strings"

// Key identifies one grounded-search call. The streaming endpoint and the
// terminal actions must build identical keys to share a cached call.
type Key struct {
	Query string
	Model string
}

// NewKey builds the key every endpoint uses: surrounding whitespace is not
// part of the query or the model name.
func NewKey(query, model string) Key {
	return Key{Query: strings.TrimSpace(query), Model: strings.TrimSpace(model)}
}

func (k Key) normalized() Key {
	return NewKey(k.Query, k.Model)
}

type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Result is the provider answer kept in the cache.
type Result struct {
	Text    string
	Sources []Source
	Model   string
}

const (
	DefaultChunkSize = 100
	untitledSource   = "제목 없음"
)
