// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache provides a bounded in-memory store for per-document
// extraction results, keyed by document ID. Results are cached unfiltered;
// category filtering is applied at read time so one cached entry serves
// every filter.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

// Cache holds recently extracted funding results with LRU eviction.
type Cache struct {
	entries *lru.Cache[string, *types.FundingResult]
}

// New creates a cache bounded to capacity entries. Capacity must be
// positive; zero falls back to the default.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		capacity = types.DefaultCacheCapacity
	}
	entries, err := lru.New[string, *types.FundingResult](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Put stores an unfiltered result for the document. Storing a document
// already present replaces its entry.
func (c *Cache) Put(docID string, result *types.FundingResult) {
	if result == nil {
		return
	}
	c.entries.Add(docID, result)
}

// Get returns the cached result for the document, restricted to the given
// categories. An empty category set means no restriction. The returned
// result is a copy; the cached entry stays unfiltered.
func (c *Cache) Get(docID string, categories ...types.FunderCategory) (*types.FundingResult, bool) {
	result, ok := c.entries.Get(docID)
	if !ok {
		return nil, false
	}

	out := *result
	out.Funding = Filter(result.Funding, categories...)
	return &out, true
}

// Forget drops the cached entry for the document, if present. Store
// deletions call this so a forgotten paper cannot be served from cache.
func (c *Cache) Forget(docID string) {
	c.entries.Remove(docID)
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Filter returns the funding records whose category is in the given set.
// An empty set returns a copy of the input unchanged. The input slice is
// never modified.
func Filter(funding []types.FundingInfo, categories ...types.FunderCategory) []types.FundingInfo {
	if len(categories) == 0 {
		out := make([]types.FundingInfo, len(funding))
		copy(out, funding)
		return out
	}

	allowed := make(map[types.FunderCategory]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}

	out := make([]types.FundingInfo, 0, len(funding))
	for _, f := range funding {
		if allowed[f.Category] {
			out = append(out, f)
		}
	}
	return out
}
