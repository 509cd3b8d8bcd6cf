// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"
)

// CachingEvaluator remembers successful evaluations so backspacing over an already typed
// prefix does not go back to the service. Keys are SHA-256 digests, plain passwords are
// never kept in memory by the cache. Failures are not cached.
type CachingEvaluator struct {
	next  Evaluator
	cache *ristretto.Cache
}

// NewCachingEvaluator caches up to size evaluations.
func NewCachingEvaluator(next Evaluator, size int64) (*CachingEvaluator, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &CachingEvaluator{next: next, cache: cache}, nil
}

func (c *CachingEvaluator) Evaluate(ctx context.Context, password string) (advisor.Evaluation, error) {
	key := cacheKey(password)
	if v, ok := c.cache.Get(key); ok {
		if result, ok := v.(advisor.Evaluation); ok {
			log.Trace().Msg("evaluation cache hit")
			return result, nil
		}
	}

	result, err := c.next.Evaluate(ctx, password)
	if err != nil {
		return result, err
	}

	c.cache.Set(key, result, 1)
	return result, nil
}

// Close releases the cache goroutines.
func (c *CachingEvaluator) Close() {
	c.cache.Close()
}

func cacheKey(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
