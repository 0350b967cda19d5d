// Package cache stores finished reports keyed by the hash of the analyzed text.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

// Cache is a byte store with per-entry expiry
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from contract text and an optional contract-type hint.
// The rule-set version is part of the key so rule updates never serve stale reports.
func Key(text, hint string) string {
	hash := sha256.Sum256([]byte(text))
	key := "contractlens:" + lexicon.Version + ":" + hex.EncodeToString(hash[:])
	if hint != "" {
		key += ":" + strings.ToLower(hint)
	}
	return key
}

// New builds the layered cache described by cfg, or nil when caching is disabled
func New(cfg model.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	dir, err := util.ExpandHome(cfg.Dir)
	if err != nil {
		return nil, err
	}
	return NewLayeredCache(cfg.MemoryTTL, dir, cfg.DiskTTL), nil
}

// Reports stores model.Report values as JSON in a Cache
type Reports struct {
	cache Cache
	ttl   time.Duration
}

// NewReports wraps c. A nil c yields a store that never hits.
func NewReports(c Cache, ttl time.Duration) *Reports {
	return &Reports{cache: c, ttl: ttl}
}

// Get returns the cached report for key
func (r *Reports) Get(key string) (*model.Report, bool) {
	if r == nil || r.cache == nil {
		return nil, false
	}
	data, ok := r.cache.Get(key)
	if !ok {
		return nil, false
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		_ = r.cache.Delete(key)
		return nil, false
	}
	return &report, true
}

// Put stores report under key
func (r *Reports) Put(key string, report *model.Report) error {
	if r == nil || r.cache == nil {
		return nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return r.cache.Set(key, data, r.ttl)
}
