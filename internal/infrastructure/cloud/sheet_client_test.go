package cloud

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nexera/storefront/internal/domain/store"
)

func newClient() *SheetClient {
	return NewSheetClient(5*time.Second, zap.NewNop())
}

func TestFetchAllNormalizesOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":"a","customerName":"Somsri","customerPhone":"0812345678","items":[],"totalPrice":220,"totalShipping":20,"date":"2026-08-30T10:00:00Z","isLoadingAi":true,"synced":false},
			{"id":"b","customerName":"Somchai","customerPhone":"0898765432","items":[],"totalPrice":100,"totalShipping":10,"date":"2026-08-31T10:00:00Z"}
		]`)
	}))
	defer srv.Close()

	orders, err := newClient().FetchAll(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.True(t, o.Synced, o.ID)
		assert.False(t, o.IsLoadingAI, o.ID)
	}
	assert.Equal(t, "Somsri", orders[0].CustomerName)
	assert.InDelta(t, 220.0, orders[0].TotalPrice.InexactFloat64(), 0.001)
}

func TestFetchAllServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient().FetchAll(context.Background(), srv.URL)
	assert.ErrorIs(t, err, store.ErrCloudUnavailable)
}

func TestFetchAllInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"an array"}`)
	}))
	defer srv.Close()

	_, err := newClient().FetchAll(context.Background(), srv.URL)
	assert.ErrorIs(t, err, store.ErrCloudInvalidPayload)
}

func TestFetchAllUnreachableEndpoint(t *testing.T) {
	_, err := newClient().FetchAll(context.Background(), "http://127.0.0.1:1")
	assert.ErrorIs(t, err, store.ErrCloudUnavailable)
}

func TestAppendSendsPlainTextDocument(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	order, err := store.NewOrder([]store.CartItem{
		{Product: store.Product{ID: "p1", Name: "Serum", Stock: 1}, Quantity: 1},
	}, "Somsri", "0812345678")
	require.NoError(t, err)

	status, err := newClient().Append(context.Background(), srv.URL, order)
	require.NoError(t, err)

	assert.Equal(t, store.DispatchAccepted, status)
	assert.Contains(t, gotContentType, "text/plain")
	assert.Contains(t, string(gotBody), `"customerName":"Somsri"`)
}

func TestAppendIgnoresResponseStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	order, err := store.NewOrder([]store.CartItem{
		{Product: store.Product{ID: "p1", Name: "Serum", Stock: 1}, Quantity: 1},
	}, "Somsri", "0812345678")
	require.NoError(t, err)

	status, err := newClient().Append(context.Background(), srv.URL, order)
	require.NoError(t, err)
	assert.Equal(t, store.DispatchAccepted, status)
}

func TestAppendTransportFailure(t *testing.T) {
	order, err := store.NewOrder([]store.CartItem{
		{Product: store.Product{ID: "p1", Name: "Serum", Stock: 1}, Quantity: 1},
	}, "Somsri", "0812345678")
	require.NoError(t, err)

	status, err := newClient().Append(context.Background(), "http://127.0.0.1:1", order)
	assert.Error(t, err)
	assert.Equal(t, store.DispatchFailed, status)
}
