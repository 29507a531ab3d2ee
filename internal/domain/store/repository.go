package store

import (
	"context"
	"errors"
)

// Cloud integration errors. Adapters wrap transport details around these
// sentinels so callers can classify failures without knowing the transport.
var (
	ErrCloudUnavailable    = errors.New("cloud endpoint unavailable")
	ErrCloudInvalidPayload = errors.New("cloud endpoint returned an invalid payload")
)

// AppConfig is the runtime configuration the customer can change from the
// settings screen. An empty script URL disables cloud sync entirely.
type AppConfig struct {
	ScriptURL string `json:"scriptUrl"`
}

// CloudEnabled reports whether a spreadsheet endpoint is configured.
func (c AppConfig) CloudEnabled() bool {
	return c.ScriptURL != ""
}

// ProductRepository provides read access to the product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
}

// OrderStore persists the full order history as one unit.
type OrderStore interface {
	LoadOrders(ctx context.Context) ([]*Order, error)
	SaveOrders(ctx context.Context, orders []*Order) error
}

// ConfigStore persists the customer-changeable configuration.
type ConfigStore interface {
	LoadConfig(ctx context.Context) (AppConfig, error)
	SaveConfig(ctx context.Context, cfg AppConfig) error
}

// DispatchStatus describes the outcome of handing an order to the
// spreadsheet endpoint. The endpoint never returns a readable body, so
// DispatchAccepted only means the request left this process without a
// transport error; server-side rejection is not observable.
type DispatchStatus int

const (
	DispatchFailed DispatchStatus = iota
	DispatchAccepted
)

// String implements fmt.Stringer.
func (s DispatchStatus) String() string {
	switch s {
	case DispatchAccepted:
		return "accepted"
	case DispatchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CloudStore talks to the remote spreadsheet endpoint.
type CloudStore interface {
	// FetchAll retrieves every order the endpoint knows about. Returned
	// orders are normalized as synced with no pending summary work.
	FetchAll(ctx context.Context, endpoint string) ([]*Order, error)
	// Append hands a single order to the endpoint.
	Append(ctx context.Context, endpoint string, order *Order) (DispatchStatus, error)
}

// Summarizer produces the thank-you note for a placed order. It never
// fails; adapters return a fixed fallback text when generation is not
// possible.
type Summarizer interface {
	Summarize(ctx context.Context, order *Order) string
}
