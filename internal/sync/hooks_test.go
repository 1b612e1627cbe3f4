package sync_test

import (
	"testing"

	"saasusync/internal/logger"
	"saasusync/internal/services/saasu"
	"saasusync/internal/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHooks(api *fakeAPI) *sync.Hooks {
	cfg := validConfig()
	log := logger.New("error")
	return sync.NewHooks(
		sync.NewStockSyncer(cfg, log, api, nil),
		sync.NewInvoicePoster(cfg, log, api, nil),
	)
}

func TestBeforeVariantSaveReturnsVariant(t *testing.T) {
	api := &fakeAPI{item: &saasu.Item{StockOnHand: 3}}
	variant := testVariant()

	got := newHooks(api).BeforeVariantSave(variant)

	assert.Same(t, variant, got)
	assert.Equal(t, 3, got.Stock)
}

func TestOrderCompletePostsInvoices(t *testing.T) {
	api := &fakeAPI{}
	hooks := newHooks(api)

	hooks.OrderComplete(testOrder())
	require.Len(t, api.posted, 1)

	hooks.OrderComplete(nil)
	assert.Len(t, api.posted, 1)
}

func TestBeforeSnapshotCaptureAppendsSaasuID(t *testing.T) {
	hooks := newHooks(&fakeAPI{})

	fields := hooks.BeforeSnapshotCapture([]string{"title", "price"})

	assert.Equal(t, []string{"title", "price", "saasuId"}, fields)
}

func TestBeforeSnapshotCaptureEmptySet(t *testing.T) {
	hooks := newHooks(&fakeAPI{})

	fields := hooks.BeforeSnapshotCapture(nil)

	assert.Equal(t, []string{"saasuId"}, fields)
}
