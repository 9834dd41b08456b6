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
	"metroll_cms/utils"
)

func checkoutServer(t *testing.T, capture *model.CheckoutRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/discount-packages/pkg-1":
			w.Write([]byte(`{"id":"pkg-1","discountPercentage":0.1}`))
		case "/vouchers/v-1":
			w.Write([]byte(`{"id":"v-1","discountAmount":50,"minTransactionAmount":100}`))
		case "/orders/v1/checkout":
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
			w.Write([]byte(`{"id":"order-1","status":"COMPLETED"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestCheckout_ExpandsQuantitiesIntoDetails(t *testing.T) {
	var got model.CheckoutRequest
	srv := checkoutServer(t, &got)
	defer srv.Close()

	svc := NewOrderService(client.New(srv.URL), nil)
	order, err := svc.Checkout(context.Background(), "staff-1", model.CheckoutInput{
		PaymentMethod: "CASH",
		Items: []model.CheckoutItem{
			{TicketType: model.TicketP2P, StartStationCode: utils.Ptr("A"), EndStationCode: utils.Ptr("B"), UnitPrice: 15, Quantity: 3},
			{TicketType: model.TicketTimed, UnitPrice: 40, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	assert.Equal(t, "staff-1", got.StaffID)
	require.Len(t, got.Details, 4, "one detail row per ticket, quantities expanded")
	assert.Equal(t, model.TicketP2P, got.Details[0].TicketType)
	require.NotNil(t, got.Details[0].StartStationCode)
	assert.Equal(t, "A", *got.Details[0].StartStationCode)
	assert.Equal(t, 15.0, got.Details[2].UnitPrice)
	assert.Equal(t, model.TicketTimed, got.Details[3].TicketType)

	assert.Equal(t, 85.0, got.BaseTotal)
	assert.Equal(t, 0.0, got.DiscountTotal)
	assert.Equal(t, 85.0, got.FinalTotal)
}

func TestCheckout_AppliesPackageAndVoucher(t *testing.T) {
	var got model.CheckoutRequest
	srv := checkoutServer(t, &got)
	defer srv.Close()

	svc := NewOrderService(client.New(srv.URL), nil)
	_, err := svc.Checkout(context.Background(), "staff-1", model.CheckoutInput{
		DiscountPackageID: utils.Ptr("pkg-1"),
		VoucherID:         utils.Ptr("v-1"),
		PaymentMethod:     "CARD",
		Items: []model.CheckoutItem{
			{TicketType: model.TicketTimed, UnitPrice: 100, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 10% package discount per ticket, plus the order-level voucher since
	// the base total clears its minimum.
	assert.Equal(t, 200.0, got.BaseTotal)
	assert.Equal(t, 70.0, got.DiscountTotal)
	assert.Equal(t, 130.0, got.FinalTotal)
	assert.Equal(t, 10.0, got.Details[0].DiscountTotal)
}

func TestCheckout_VoucherBelowMinimumIgnored(t *testing.T) {
	var got model.CheckoutRequest
	srv := checkoutServer(t, &got)
	defer srv.Close()

	svc := NewOrderService(client.New(srv.URL), nil)
	_, err := svc.Checkout(context.Background(), "staff-1", model.CheckoutInput{
		VoucherID:     utils.Ptr("v-1"),
		PaymentMethod: "CASH",
		Items: []model.CheckoutItem{
			{TicketType: model.TicketTimed, UnitPrice: 40, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.BaseTotal)
	assert.Equal(t, 0.0, got.DiscountTotal)
}

func TestCheckout_FinalTotalNeverNegative(t *testing.T) {
	var got model.CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vouchers/v-big":
			w.Write([]byte(`{"id":"v-big","discountAmount":500,"minTransactionAmount":0}`))
		case "/orders/v1/checkout":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"id":"order-2"}`))
		}
	}))
	defer srv.Close()

	svc := NewOrderService(client.New(srv.URL), nil)
	_, err := svc.Checkout(context.Background(), "staff-1", model.CheckoutInput{
		VoucherID:     utils.Ptr("v-big"),
		PaymentMethod: "CASH",
		Items: []model.CheckoutItem{
			{TicketType: model.TicketTimed, UnitPrice: 40, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.FinalTotal)
}
