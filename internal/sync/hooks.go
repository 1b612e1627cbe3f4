package sync

import "saasusync/internal/models"

// SnapshotField is the variant field the host must freeze into line item
// snapshots so completed orders can be matched back to Saasu inventory.
const SnapshotField = "saasuId"

// Hooks is the surface the host commerce platform calls on its lifecycle
// events. All three calls are synchronous and never return an error; a
// broken integration must not break a save or a checkout.
type Hooks struct {
	stock    *StockSyncer
	invoices *InvoicePoster
}

func NewHooks(stock *StockSyncer, invoices *InvoicePoster) *Hooks {
	return &Hooks{
		stock:    stock,
		invoices: invoices,
	}
}

// BeforeVariantSave syncs the variant's stock level and returns the same
// variant for the host to persist.
func (h *Hooks) BeforeVariantSave(variant *models.Variant) *models.Variant {
	h.stock.SyncVariantStock(variant)
	return variant
}

// OrderComplete posts the order's invoices. The host resolves the order,
// including line snapshots, before calling.
func (h *Hooks) OrderComplete(order *models.Order) {
	if order == nil {
		return
	}
	h.invoices.PostOrderInvoices(order)
}

// BeforeSnapshotCapture appends the Saasu id to the set of variant fields
// the host is about to snapshot.
func (h *Hooks) BeforeSnapshotCapture(fields []string) []string {
	return append(fields, SnapshotField)
}
