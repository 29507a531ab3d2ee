package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nexera/storefront/internal/domain/store"
)

// maxResponseSize caps how much of a fetch response is read.
const maxResponseSize = 10 << 20

// SheetClient talks to a spreadsheet web-app endpoint. Fetches return the
// full order list as JSON; appends post one order and treat the response
// body as opaque, because the endpoint answers with redirects whose result
// carries no usable payload.
type SheetClient struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSheetClient creates a client with the given request timeout.
func NewSheetClient(timeout time.Duration, logger *zap.Logger) *SheetClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SheetClient{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchAll retrieves every order stored at the endpoint. Orders come back
// normalized: synced, with no pending summary work.
func (c *SheetClient) FetchAll(ctx context.Context, endpoint string) ([]*store.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCloudUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCloudUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", store.ErrCloudUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCloudUnavailable, err)
	}

	var docs []store.OrderDocument
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCloudInvalidPayload, err)
	}

	orders := store.DocumentsToOrders(docs)
	for _, o := range orders {
		o.Synced = true
		o.IsLoadingAI = false
	}

	c.logger.Debug("fetched orders from sheet",
		zap.Int("count", len(orders)))
	return orders, nil
}

// Append posts one order to the endpoint. The body is sent as text/plain
// so the web app accepts it without a preflight, and the response is not
// interpreted: once the request completes without a transport error the
// dispatch counts as accepted, server-side rejection is not observable.
func (c *SheetClient) Append(ctx context.Context, endpoint string, order *store.Order) (store.DispatchStatus, error) {
	payload, err := json.Marshal(order.ToDocument())
	if err != nil {
		return store.DispatchFailed, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return store.DispatchFailed, fmt.Errorf("%w: %v", store.ErrCloudUnavailable, err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return store.DispatchFailed, fmt.Errorf("%w: %v", store.ErrCloudUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	c.logger.Debug("order dispatched to sheet",
		zap.String("order_id", order.ID),
		zap.Int("status", resp.StatusCode))
	return store.DispatchAccepted, nil
}
