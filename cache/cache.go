// Package cache is the query-cache layer between the resource services
// and the Metroll API: redis-backed, keyed by the full request parameter
// tuple, with singleflight dedup so concurrent requests for one key share
// a single upstream call.
package cache

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"metroll_cms/model"
)

const keyPrefix = "metroll:q"

// Staleness windows. Mutation-driven invalidation is the primary
// mechanism; the TTLs only bound how long dashboard-style data can lag.
const (
	ListTTL    = 2 * time.Minute
	RecordTTL  = 5 * time.Minute
	SummaryTTL = 5 * time.Minute
)

type Query struct {
	rdb   *redis.Client
	group singleflight.Group
}

// NewQuery wraps a redis client. A nil *Query is valid everywhere and
// disables caching (every call passes straight through).
func NewQuery(rdb *redis.Client) *Query {
	return &Query{rdb: rdb}
}

// ListKey builds the cache key for a paginated list: entity, "page",
// page number, page size, sort map, filter map. Maps are serialized with
// sorted keys so equal parameter sets always map to the same key and any
// changed parameter (including sort direction) is a miss.
func ListKey(entity string, pageable *model.Pageable, filters map[string]string) string {
	page, size := 0, 0
	sortPart := "-"
	if pageable != nil {
		page, size = pageable.Page, pageable.Size
		if len(pageable.Sort) > 0 {
			fields := make([]string, 0, len(pageable.Sort))
			for f := range pageable.Sort {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				parts = append(parts, f+","+string(pageable.Sort[f]))
			}
			sortPart = strings.Join(parts, ";")
		}
	}

	filterPart := "-"
	if len(filters) > 0 {
		keys := make([]string, 0, len(filters))
		for k := range filters {
			if filters[k] == "" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, k+"="+filters[k])
			}
			filterPart = strings.Join(parts, ";")
		}
	}

	return fmt.Sprintf("%s:%s:page:%d:%d:%s:%s", keyPrefix, entity, page, size, sortPart, filterPart)
}

// RecordKey is the cache key for a single record.
func RecordKey(entity, id string) string {
	return fmt.Sprintf("%s:%s:id:%s", keyPrefix, entity, id)
}

// SummaryKey is the cache key for an entity summary aggregate.
func SummaryKey(entity string) string {
	return fmt.Sprintf("%s:%s:summary", keyPrefix, entity)
}

// GetOrFetch returns the cached payload for key, or runs fetch (once per
// key across concurrent callers) and stores the result. Redis trouble is
// logged and degraded to a plain fetch, never surfaced to the caller.
func (q *Query) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func() ([]byte, error)) ([]byte, error) {
	if q == nil || q.rdb == nil {
		return fetch()
	}

	if cached, err := q.rdb.Get(ctx, key).Bytes(); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("cache: read %s failed: %v", key, err)
	}

	raw, err, _ := q.group.Do(key, func() (any, error) {
		payload, err := fetch()
		if err != nil {
			return nil, err
		}
		if err := q.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
			log.Printf("cache: store %s failed: %v", key, err)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return raw.([]byte), nil
}

// InvalidateEntity drops every cached list, record and summary for the
// entity. Coarse on purpose: a stale fragment is never served, at the
// cost of refetching more than strictly necessary.
func (q *Query) InvalidateEntity(ctx context.Context, entity string) {
	if q == nil || q.rdb == nil {
		return
	}
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, entity)
	iter := q.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := q.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache: delete %s failed: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache: scan %s failed: %v", pattern, err)
	}
}

// InvalidateRecord drops the single-record key for id.
func (q *Query) InvalidateRecord(ctx context.Context, entity, id string) {
	if q == nil || q.rdb == nil {
		return
	}
	if err := q.rdb.Del(ctx, RecordKey(entity, id)).Err(); err != nil {
		log.Printf("cache: delete record %s/%s failed: %v", entity, id, err)
	}
}
