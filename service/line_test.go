package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/client"
	"metroll_cms/model"
)

func segInput(start, end string, seq int) model.SegmentInput {
	return model.SegmentInput{
		Sequence:         seq,
		StartStationCode: start,
		EndStationCode:   end,
		DistanceKm:       2.4,
		TravelTimeMin:    4,
	}
}

func TestLineSave_RejectsBadChainsBeforeCalling(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := NewLineService(client.New(srv.URL), nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		segments []model.SegmentInput
	}{
		{"empty", nil},
		{"broken chain", []model.SegmentInput{segInput("A", "B", 1), segInput("C", "D", 2)}},
		{"closed loop", []model.SegmentInput{segInput("A", "B", 1), segInput("B", "C", 2), segInput("C", "A", 3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Save(ctx, model.SaveLineInput{Name: "Line 1", Segments: tc.segments})
			require.Error(t, err)
			assert.Equal(t, client.KindValidation, client.AsError(err).Kind)
		})
	}
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls), "invalid drafts never reach the network")
}

func TestLineSave_DerivesCodeAndPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lines", r.URL.Path)
		w.Write([]byte(`{"code":"LINE-1","name":"Line 1"}`))
	}))
	defer srv.Close()

	svc := NewLineService(client.New(srv.URL), nil)
	line, err := svc.Save(context.Background(), model.SaveLineInput{
		Name:     "Line 1",
		Segments: []model.SegmentInput{segInput("A", "B", 1), segInput("B", "C", 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "LINE-1", line.Code)
}

func TestLineSetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/lines/LINE-1/status", r.URL.Path)
		w.Write([]byte(`{"code":"LINE-1","status":"CLOSED"}`))
	}))
	defer srv.Close()

	svc := NewLineService(client.New(srv.URL), nil)
	line, err := svc.SetStatus(context.Background(), "LINE-1", model.LineClosed)
	require.NoError(t, err)
	assert.Equal(t, model.LineClosed, line.Status)
}
