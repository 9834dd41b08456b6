package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/client"
	"metroll_cms/model"
)

func TestStationSave_DerivesCodeFromName(t *testing.T) {
	var got model.SaveStationInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"code":"BEN-THANH","name":"Bến Thành"}`))
	}))
	defer srv.Close()

	svc := NewStationService(client.New(srv.URL), nil)
	st, err := svc.Save(context.Background(), model.SaveStationInput{Name: "Bến Thành"})
	require.NoError(t, err)
	assert.Equal(t, "BEN-THANH", got.Code, "blank code is slugged from the name before submission")
	assert.Equal(t, "BEN-THANH", st.Code)
}

func TestStationSave_KeepsExplicitCode(t *testing.T) {
	var got model.SaveStationInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"code":"BT01"}`))
	}))
	defer srv.Close()

	svc := NewStationService(client.New(srv.URL), nil)
	_, err := svc.Save(context.Background(), model.SaveStationInput{Code: "BT01", Name: "Bến Thành"})
	require.NoError(t, err)
	assert.Equal(t, "BT01", got.Code)
}

func TestStationCreateThenGet_RoundTrip(t *testing.T) {
	stored := `{
		"code": "BEN-THANH",
		"name": "Bến Thành",
		"address": "Quách Thị Trang, Q1",
		"latitude": 10.7697,
		"longitude": 106.698,
		"status": "OPERATIONAL"
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/stations":
			w.Write([]byte(stored))
		case r.Method == http.MethodGet && r.URL.Path == "/stations/BEN-THANH":
			w.Write([]byte(stored))
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := NewStationService(client.New(srv.URL), nil)
	created, err := svc.Save(context.Background(), model.SaveStationInput{
		Name:      "Bến Thành",
		Address:   "Quách Thị Trang, Q1",
		Latitude:  10.7697,
		Longitude: 106.698,
		Status:    model.StationOperational,
	})
	require.NoError(t, err)

	fetched, err := svc.GetByCode(context.Background(), created.Code)
	require.NoError(t, err)
	assert.Equal(t, created.Code, fetched.Code)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Latitude, fetched.Latitude)
	assert.Equal(t, created.Longitude, fetched.Longitude)
}

func TestStationSummary_FallbackCountsStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stations/summary":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{}`))
		case "/stations":
			w.Write(pageBody(t, []model.Station{
				{Code: "A", Status: model.StationOperational},
				{Code: "B", Status: model.StationOperational},
				{Code: "C", Status: model.StationUnderMaintenance},
				{Code: "D", Status: model.StationClosed},
			}))
		}
	}))
	defer srv.Close()

	svc := NewStationService(client.New(srv.URL), nil)
	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.TotalStations)
	assert.Equal(t, 2, sum.Operational)
	assert.Equal(t, 1, sum.UnderMaintenance)
	assert.Equal(t, 1, sum.Closed)
}
