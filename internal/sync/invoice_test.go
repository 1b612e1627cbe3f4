package sync_test

import (
	"errors"
	"testing"
	"time"

	"saasusync/internal/config"
	"saasusync/internal/logger"
	"saasusync/internal/models"
	"saasusync/internal/services/saasu"
	"saasusync/internal/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	item    *saasu.Item
	itemErr error

	posted   []*saasu.Invoice
	postErrs []error
}

func (f *fakeAPI) GetItem(inventoryID string) (*saasu.Item, error) {
	return f.item, f.itemErr
}

// PostInvoice returns the scripted error for the current call, indexed by
// how many posts came before it; calls beyond the script succeed.
func (f *fakeAPI) PostInvoice(invoice *saasu.Invoice) error {
	call := len(f.posted)
	f.posted = append(f.posted, invoice)
	if call < len(f.postErrs) {
		return f.postErrs[call]
	}
	return nil
}

type fakeRecorder struct {
	flows   []models.SyncFlow
	details []string
	errs    []error
}

func (f *fakeRecorder) Record(flow models.SyncFlow, reference, detail string, err error) {
	f.flows = append(f.flows, flow)
	f.details = append(f.details, detail)
	f.errs = append(f.errs, err)
}

func validConfig() *config.Config {
	return &config.Config{
		SaasuAPIURL:         "https://api.saasu.test/",
		SaasuKey:            "key",
		SaasuFileID:         "file",
		SaasuBankAccount:    "bank-1",
		SaasuItemAccount:    "item-1",
		SaasuServiceAccount: "service-1",
		SaasuShippingID:     "ship-1",
		LogLevel:            "error",
	}
}

func testOrder() *models.Order {
	return &models.Order{
		ID:          "order-1",
		Number:      "A1001",
		DateOrdered: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Currency:    "AUD",
	}
}

func newPoster(cfg *config.Config, api *fakeAPI, rec *fakeRecorder) *sync.InvoicePoster {
	var recorder sync.Recorder
	if rec != nil {
		recorder = rec
	}
	return sync.NewInvoicePoster(cfg, logger.New("error"), api, recorder)
}

func TestPostOrderInvoicesConfigIncomplete(t *testing.T) {
	cfg := validConfig()
	cfg.SaasuBankAccount = ""
	api := &fakeAPI{}

	newPoster(cfg, api, nil).PostOrderInvoices(testOrder())

	assert.Empty(t, api.posted, "incomplete config must not post anything")
}

func TestPostOrderInvoicesAllListed(t *testing.T) {
	paid := time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC)
	order := testOrder()
	order.DatePaid = &paid
	order.ShippingCost = 5
	order.Lines = []models.OrderLine{
		{
			Snapshot:  &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"},
			Quantity:  1,
			SalePrice: 10,
		},
		{
			Snapshot:  &models.LineItemSnapshot{Title: "Blue Mug", Price: 20, SaasuID: "inv-blue"},
			Quantity:  1,
			SalePrice: 20,
		},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 1, "no unlisted amount, so only the item invoice is posted")
	invoice := api.posted[0]

	require.Len(t, invoice.LineItems, 3)
	assert.Equal(t, "Red Mug", invoice.LineItems[0].Description)
	assert.Equal(t, "inv-red", invoice.LineItems[0].InventoryID)
	assert.Equal(t, "item-1", invoice.LineItems[0].AccountID)

	shipping := invoice.LineItems[2]
	assert.Equal(t, "Shipping fee", shipping.Description)
	assert.Equal(t, 1, shipping.Quantity)
	assert.Equal(t, 5.0, shipping.UnitPrice)
	assert.Equal(t, "ship-1", shipping.InventoryID)

	assert.Equal(t, saasu.LayoutItem, invoice.Layout)
	require.NotNil(t, invoice.QuickPayment)
	assert.Equal(t, 35.0, invoice.QuickPayment.Amount)
	assert.Equal(t, "bank-1", invoice.QuickPayment.BankedToAccountID)
	assert.Equal(t, "Listed items(Craft reference: A1001)", invoice.QuickPayment.Reference)
	assert.Equal(t, paid.Format(time.RFC3339), invoice.QuickPayment.DatePaid)
	assert.Equal(t, "AUD", invoice.Currency)
}

func TestPostOrderInvoicesAllUnlisted(t *testing.T) {
	order := testOrder()
	order.Lines = []models.OrderLine{
		{
			Snapshot:  &models.LineItemSnapshot{Title: "Custom engraving", Price: 15},
			Quantity:  2,
			SalePrice: 15,
		},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 2, "item invoice is posted even with no lines")

	assert.Empty(t, api.posted[0].LineItems)
	assert.Equal(t, saasu.LayoutItem, api.posted[0].Layout)

	service := api.posted[1]
	assert.Equal(t, saasu.LayoutService, service.Layout)
	require.Len(t, service.LineItems, 1)
	line := service.LineItems[0]
	assert.Equal(t, "Unlisted items in online order", line.Description)
	assert.Equal(t, "service-1", line.AccountID)
	assert.Equal(t, 30.0, line.TotalAmount)
	assert.Empty(t, line.InventoryID)

	// No payment without a paid date, on either invoice.
	assert.Nil(t, api.posted[0].QuickPayment)
	assert.Nil(t, service.QuickPayment)
	assert.Empty(t, service.Currency)
}

func TestPostOrderInvoicesSnapshotPriceDrivesTotals(t *testing.T) {
	paid := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	order := testOrder()
	order.DatePaid = &paid
	order.Lines = []models.OrderLine{
		{
			// Discounted at sale time: the line bills at 8 but the totals
			// come from the snapshot price of 10.
			Snapshot:  &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"},
			Quantity:  2,
			SalePrice: 8,
		},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 1)
	assert.Equal(t, 8.0, api.posted[0].LineItems[0].UnitPrice)
	assert.Equal(t, 20.0, api.posted[0].QuickPayment.Amount)
}

func TestPostOrderInvoicesSplitPayments(t *testing.T) {
	paid := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	order := testOrder()
	order.DatePaid = &paid
	order.Lines = []models.OrderLine{
		{
			Snapshot:  &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"},
			Quantity:  1,
			SalePrice: 10,
		},
		{
			Snapshot:  &models.LineItemSnapshot{Title: "Gift wrap", Price: 4},
			Quantity:  1,
			SalePrice: 4,
		},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 2)
	require.NotNil(t, api.posted[0].QuickPayment)
	require.NotNil(t, api.posted[1].QuickPayment)
	assert.Equal(t, 10.0, api.posted[0].QuickPayment.Amount)
	assert.Equal(t, 4.0, api.posted[1].QuickPayment.Amount)
	assert.Equal(t, "Unlisted items(Craft reference: A1001)", api.posted[1].QuickPayment.Reference)
}

func TestPostOrderInvoicesPurchaseOrder(t *testing.T) {
	order := testOrder()
	order.PaymentMethodHandle = models.PaymentMethodPurchaseOrder
	order.OrderReference = "PO-777"
	order.Lines = []models.OrderLine{
		{Snapshot: &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"}, Quantity: 1, SalePrice: 10},
		{Snapshot: &models.LineItemSnapshot{Title: "Gift wrap", Price: 4}, Quantity: 1, SalePrice: 4},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 2)
	assert.Equal(t, "PO-777", api.posted[0].PurchaseOrderNumber)
	assert.Equal(t, "PO-777", api.posted[1].PurchaseOrderNumber)
}

func TestPostOrderInvoicesNoPurchaseOrderForOtherGateways(t *testing.T) {
	order := testOrder()
	order.PaymentMethodHandle = "stripe"
	order.OrderReference = "REF-1"
	order.Lines = []models.OrderLine{
		{Snapshot: &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"}, Quantity: 1, SalePrice: 10},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 1)
	assert.Empty(t, api.posted[0].PurchaseOrderNumber)
}

func TestPostOrderInvoicesLinesWithoutSnapshotSkipped(t *testing.T) {
	order := testOrder()
	order.Lines = []models.OrderLine{
		{Snapshot: nil, Quantity: 3, SalePrice: 99},
		{Snapshot: &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"}, Quantity: 1, SalePrice: 10},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 1)
	assert.Len(t, api.posted[0].LineItems, 1)
}

func TestPostOrderInvoicesNoShippingLineForFreeShipping(t *testing.T) {
	order := testOrder()
	order.ShippingCost = 0
	order.Lines = []models.OrderLine{
		{Snapshot: &models.LineItemSnapshot{Title: "Red Mug", Price: 10, SaasuID: "inv-red"}, Quantity: 1, SalePrice: 10},
	}

	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 1)
	assert.Len(t, api.posted[0].LineItems, 1)
}

func TestPostOrderInvoicesMetadata(t *testing.T) {
	order := testOrder()
	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(order)

	require.Len(t, api.posted, 1)
	invoice := api.posted[0]
	assert.Equal(t, saasu.AutoInvoiceNumber, invoice.InvoiceNumber)
	assert.Equal(t, saasu.InvoiceTypeSaleOrder, invoice.InvoiceType)
	assert.Equal(t, saasu.TransactionTypeSale, invoice.TransactionType)
	assert.True(t, invoice.IsTaxInc)
	assert.False(t, invoice.RequiresFollowUp)
	assert.Equal(t, "Listed items - Online order reference: A1001", invoice.NotesInternal)
	assert.Equal(t, "Listed items - Online order reference: A1001", invoice.Summary)
	assert.Equal(t, "2024-03-01T10:00:00Z", invoice.TransactionDate)
}

func TestPostOrderInvoicesSecondPostAttemptedAfterFailure(t *testing.T) {
	order := testOrder()
	order.Lines = []models.OrderLine{
		{Snapshot: &models.LineItemSnapshot{Title: "Gift wrap", Price: 4}, Quantity: 1, SalePrice: 4},
	}

	api := &fakeAPI{postErrs: []error{errors.New("saasu is down"), nil}}
	rec := &fakeRecorder{}
	newPoster(validConfig(), api, rec).PostOrderInvoices(order)

	require.Len(t, api.posted, 2, "a failed first post must not stop the second")
	require.Len(t, rec.errs, 2)
	assert.Error(t, rec.errs[0])
	assert.NoError(t, rec.errs[1])
	assert.Equal(t, []models.SyncFlow{models.FlowInvoicePost, models.FlowInvoicePost}, rec.flows)
}

func TestPostOrderInvoicesNilOrder(t *testing.T) {
	api := &fakeAPI{}
	newPoster(validConfig(), api, nil).PostOrderInvoices(nil)
	assert.Empty(t, api.posted)
}
