package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching parse results
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Lemma pairs a surface word with its dictionary form.
type Lemma struct {
	Surface string
	Lemma   string
}

// Lemmatizer reduces words to their dictionary form ("cloves" -> "clove").
// Implementations fall back to the lowercased surface form for words they
// cannot resolve.
type Lemmatizer interface {
	Lemmatize(text string) []Lemma
}
