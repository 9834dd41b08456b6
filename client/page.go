package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"metroll_cms/model"
)

// BuildPageQuery flattens a pageable plus a filter map into query
// parameters. Sort fields and filter keys are emitted in sorted order so
// two calls with equal inputs always build the identical parameter set.
// Filter entries with an empty value are omitted, never sent blank.
func BuildPageQuery(pageable *model.Pageable, filters map[string]string) url.Values {
	query := url.Values{}
	if pageable != nil {
		query.Set("page", strconv.Itoa(pageable.Page))
		if pageable.Size > 0 {
			query.Set("size", strconv.Itoa(pageable.Size))
		}
		fields := make([]string, 0, len(pageable.Sort))
		for field := range pageable.Sort {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			query.Add("sort", field+","+string(pageable.Sort[field]))
		}
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if filters[k] == "" {
			continue
		}
		query.Set(k, filters[k])
	}
	return query
}

// FetchPage performs a paginated GET and decodes the standard page
// envelope.
func FetchPage[T any](ctx context.Context, c *Client, path string, pageable *model.Pageable, filters map[string]string) (model.Page[T], error) {
	var page model.Page[T]
	raw, err := c.Perform(ctx, http.MethodGet, path, nil, BuildPageQuery(pageable, filters))
	if err != nil {
		return page, err
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return page, &Error{Kind: KindUnknown, Message: err.Error()}
	}
	return page, nil
}

// Decode unmarshals a raw Perform result into T, passing through any call
// error untouched.
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &Error{Kind: KindUnknown, Message: err.Error()}
	}
	return out, nil
}
