package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/model"
)

func TestListKey_Canonical(t *testing.T) {
	a := ListKey("stations", &model.Pageable{
		Page: 1,
		Size: 20,
		Sort: map[string]model.SortDirection{"name": model.SortAsc, "createdAt": model.SortDesc},
	}, map[string]string{"status": "OPERATIONAL", "search": "ben"})

	b := ListKey("stations", &model.Pageable{
		Page: 1,
		Size: 20,
		Sort: map[string]model.SortDirection{"createdAt": model.SortDesc, "name": model.SortAsc},
	}, map[string]string{"search": "ben", "status": "OPERATIONAL"})

	assert.Equal(t, a, b, "map iteration order must not leak into the key")
	assert.Equal(t, "metroll:q:stations:page:1:20:createdAt,desc;name,asc:search=ben;status=OPERATIONAL", a)
}

func TestListKey_ParameterChangesMiss(t *testing.T) {
	base := ListKey("orders", &model.Pageable{Page: 0, Size: 10}, nil)

	assert.NotEqual(t, base, ListKey("orders", &model.Pageable{Page: 1, Size: 10}, nil))
	assert.NotEqual(t, base, ListKey("orders", &model.Pageable{Page: 0, Size: 20}, nil))
	assert.NotEqual(t, base, ListKey("orders", &model.Pageable{
		Page: 0, Size: 10,
		Sort: map[string]model.SortDirection{"createdAt": model.SortDesc},
	}, nil))
	assert.NotEqual(t, base, ListKey("tickets", &model.Pageable{Page: 0, Size: 10}, nil))
}

func TestListKey_BlankFiltersIgnored(t *testing.T) {
	withBlank := ListKey("tickets", nil, map[string]string{"search": ""})
	without := ListKey("tickets", nil, nil)
	assert.Equal(t, without, withBlank)
}

func TestRecordAndSummaryKeys(t *testing.T) {
	assert.Equal(t, "metroll:q:accounts:id:acc-1", RecordKey("accounts", "acc-1"))
	assert.Equal(t, "metroll:q:accounts:summary", SummaryKey("accounts"))
}

func TestGetOrFetch_NilQueryPassesThrough(t *testing.T) {
	var q *Query
	calls := 0
	out, err := q.GetOrFetch(context.Background(), "k", ListTTL, func() ([]byte, error) {
		calls++
		return []byte("payload"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), out)
	assert.Equal(t, 1, calls)
}

func TestInvalidate_NilQueryNoop(t *testing.T) {
	var q *Query
	q.InvalidateEntity(context.Background(), "stations")
	q.InvalidateRecord(context.Background(), "stations", "X")
}
