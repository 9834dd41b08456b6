// Package service maps domain verbs onto Metroll API calls, one service
// per entity, with the query cache in between. Mutations invalidate the
// whole entity keyspace plus the touched record on success.
package service

import (
	"context"
	"encoding/json"
	"net/http"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/model"
)

// summaryScanLimit caps the client-side aggregation fallback: when a
// dedicated summary endpoint is unavailable the summary is computed from
// at most this many records and is silently approximate above it.
const summaryScanLimit = 1000

func listPage[T any](ctx context.Context, c *client.Client, q *cache.Query, entity, path string, pageable *model.Pageable, filters map[string]string) (model.Page[T], error) {
	var page model.Page[T]
	key := cache.ListKey(entity, pageable, filters)
	raw, err := q.GetOrFetch(ctx, key, cache.ListTTL, func() ([]byte, error) {
		return c.Perform(ctx, http.MethodGet, path, nil, client.BuildPageQuery(pageable, filters))
	})
	if err != nil {
		return page, err
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return page, &client.Error{Kind: client.KindUnknown, Message: err.Error()}
	}
	return page, nil
}

func getRecord[T any](ctx context.Context, c *client.Client, q *cache.Query, entity, path, id string) (T, error) {
	var out T
	raw, err := q.GetOrFetch(ctx, cache.RecordKey(entity, id), cache.RecordTTL, func() ([]byte, error) {
		return c.Perform(ctx, http.MethodGet, path, nil, nil)
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &client.Error{Kind: client.KindUnknown, Message: err.Error()}
	}
	return out, nil
}

// getSummary caches the summary aggregate, trying the dedicated endpoint
// first and degrading to the caller-supplied client-side fallback. A dead
// summary endpoint is a recovery path here, not an error.
func getSummary[T any](ctx context.Context, c *client.Client, q *cache.Query, entity, summaryPath string, fallback func() (T, error)) (T, error) {
	var out T
	raw, err := q.GetOrFetch(ctx, cache.SummaryKey(entity), cache.SummaryTTL, func() ([]byte, error) {
		if raw, err := c.Perform(ctx, http.MethodGet, summaryPath, nil, nil); err == nil {
			return raw, nil
		}
		computed, err := fallback()
		if err != nil {
			return nil, err
		}
		return json.Marshal(computed)
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &client.Error{Kind: client.KindUnknown, Message: err.Error()}
	}
	return out, nil
}

func searchFilters(query string) map[string]string {
	return map[string]string{"search": query}
}
