package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/client"
	"metroll_cms/model"
)

func TestAssign_SubmitsMultipartWithDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account-discount-packages", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "acc-1", r.FormValue("accountId"))
		assert.Equal(t, "pkg-1", r.FormValue("discountPackageId"))

		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "student-card.pdf", header.Filename)

		w.Write([]byte(`{"id":"assign-1","status":"ACTIVATED"}`))
	}))
	defer srv.Close()

	svc := NewDiscountService(client.New(srv.URL), nil)
	assignment, err := svc.Assign(context.Background(),
		model.AssignPackageInput{AccountID: "acc-1", DiscountPackageID: "pkg-1"},
		"student-card.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "assign-1", assignment.ID)
	assert.Equal(t, model.AssignmentActivated, assignment.Status)
}

func TestAssign_WithoutDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("document")
		assert.Error(t, err, "no file part when no document was attached")
		w.Write([]byte(`{"id":"assign-2"}`))
	}))
	defer srv.Close()

	svc := NewDiscountService(client.New(srv.URL), nil)
	_, err := svc.Assign(context.Background(),
		model.AssignPackageInput{AccountID: "acc-1", DiscountPackageID: "pkg-1"}, "", nil)
	require.NoError(t, err)
}

func TestAssign_NormalizesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"account already has an active package"}`))
	}))
	defer srv.Close()

	svc := NewDiscountService(client.New(srv.URL), nil)
	_, err := svc.Assign(context.Background(),
		model.AssignPackageInput{AccountID: "acc-1", DiscountPackageID: "pkg-1"}, "", nil)
	require.Error(t, err)

	ce := client.AsError(err)
	assert.Equal(t, client.KindValidation, ce.Kind)
	assert.Equal(t, "account already has an active package", ce.Message)
}

func TestTerminatePackage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/discount-packages/pkg-1/terminate", r.URL.Path)
		w.Write([]byte(`{"id":"pkg-1","status":"TERMINATED"}`))
	}))
	defer srv.Close()

	svc := NewDiscountService(client.New(srv.URL), nil)
	pkg, err := svc.TerminatePackage(context.Background(), "pkg-1")
	require.NoError(t, err)
	assert.Equal(t, model.PackageTerminated, pkg.Status)
}
