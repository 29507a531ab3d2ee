package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nexera/storefront/internal/domain/store"
)

type fakeConfigStore struct {
	mu  sync.Mutex
	cfg store.AppConfig
}

func (f *fakeConfigStore) LoadConfig(ctx context.Context) (store.AppConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg, nil
}

func (f *fakeConfigStore) SaveConfig(ctx context.Context, cfg store.AppConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = cfg
	return nil
}

func TestSettingsUpdatePersistsAndPropagates(t *testing.T) {
	orderStore := &mockOrderStore{}
	orderStore.On("SaveOrders", mock.Anything, mock.Anything).Return(nil)
	cloud := &mockCloudStore{}
	cloud.On("FetchAll", mock.Anything, "https://script.example/exec").
		Return([]*store.Order{}, nil)

	orders := newTestService(orderStore, cloud, "ok")
	configs := &fakeConfigStore{}
	svc := NewSettingsService(configs, orders, zap.NewNop())

	resp, err := svc.Update(context.Background(), "https://script.example/exec")
	require.NoError(t, err)

	assert.Equal(t, "https://script.example/exec", resp.ScriptURL)
	assert.Equal(t, "https://script.example/exec", orders.Endpoint())

	saved, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://script.example/exec", saved.ScriptURL)
}

func TestSettingsUpdateEmptyDisablesCloud(t *testing.T) {
	orders := newTestService(&mockOrderStore{}, &mockCloudStore{}, "ok")
	orders.SetEndpoint("https://script.example/exec")
	svc := NewSettingsService(&fakeConfigStore{}, orders, zap.NewNop())

	resp, err := svc.Update(context.Background(), "  ")
	require.NoError(t, err)

	assert.Empty(t, resp.ScriptURL)
	assert.Empty(t, orders.Endpoint())
}

func TestSettingsUpdateRejectsBadURL(t *testing.T) {
	orders := newTestService(&mockOrderStore{}, &mockCloudStore{}, "ok")
	svc := NewSettingsService(&fakeConfigStore{}, orders, zap.NewNop())

	for _, bad := range []string{"not a url", "ftp://example.com", "/relative/path"} {
		_, err := svc.Update(context.Background(), bad)
		assert.Error(t, err, bad)
	}
}
